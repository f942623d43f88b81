package store_test

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"

	"github.com/kantanpro/kantanpro/internal/models"
	"github.com/kantanpro/kantanpro/internal/store"
	srvErrors "github.com/kantanpro/kantanpro/pkg/errors"
)

var _ = Describe("ReportStore", func() {
	var (
		ctx   context.Context
		clock *fakeClock
		s     *store.Store
		db    *sqlx.DB

		acme, beta int64
	)

	createOrder := func(o models.Order) int64 {
		res, err := s.Orders().Create(ctx, o)
		Expect(err).NotTo(HaveOccurred())
		return res.ID
	}

	addItem := func(orderID int64, amount, rate int64) {
		_, err := s.OrderItems().Create(ctx, models.OrderItem{
			OrderID:     orderID,
			ServiceName: "制作",
			UnitPrice:   decimal.NewFromInt(amount),
			TaxRate:     decimal.NewFromInt(rate),
			Amount:      decimal.NewFromInt(amount),
		})
		Expect(err).NotTo(HaveOccurred())
	}

	// Fixture (all in March 2024 unless noted):
	//
	//	A  Acme  完了    100000  created 03-10  completed 03-10  items 60000@10, 12345@8
	//	B  Acme  支払い   50000  created 03-10  completed 03-15  no items
	//	C  Beta  進行中   70000  created 03-10
	//	D  Beta  完了     30000  created 03-31  completed 03-31  items 30000@10
	//	E  -     完了       999  created 04-01  completed 04-01
	BeforeEach(func() {
		ctx = context.Background()
		clock = newFakeClock()
		s, db = newTestStore(ctx, clock)

		res, err := s.Clients().Create(ctx, models.Client{Name: "Acme"})
		Expect(err).NotTo(HaveOccurred())
		acme = res.ID
		res, err = s.Clients().Create(ctx, models.Client{Name: "Beta"})
		Expect(err).NotTo(HaveOccurred())
		beta = res.ID

		a := createOrder(models.Order{ClientID: &acme, ProjectName: "A", Status: models.OrderStatusCompleted, TotalAmount: decimal.NewFromInt(100000)})
		addItem(a, 60000, 10)
		addItem(a, 12345, 8)
		createOrder(models.Order{ClientID: &acme, ProjectName: "B", Status: models.OrderStatusPaid, TotalAmount: decimal.NewFromInt(50000), CompletionDate: "2024-03-15"})
		createOrder(models.Order{ClientID: &beta, ProjectName: "C", Status: models.OrderStatusInProgress, TotalAmount: decimal.NewFromInt(70000)})

		clock.Set(time.Date(2024, 3, 31, 23, 0, 0, 0, time.UTC))
		d := createOrder(models.Order{ClientID: &beta, ProjectName: "D", Status: models.OrderStatusCompleted, TotalAmount: decimal.NewFromInt(30000)})
		addItem(d, 30000, 10)

		clock.Set(time.Date(2024, 4, 1, 8, 0, 0, 0, time.UTC))
		createOrder(models.Order{ProjectName: "E", Status: models.OrderStatusCompleted, TotalAmount: decimal.NewFromInt(999)})
	})

	AfterEach(func() {
		if db != nil {
			db.Close()
		}
	})

	Context("SalesReport", func() {
		// Given closed and open orders across March and April
		// When we report March
		// Then only closed March orders count, grouped per day, newest day first
		It("should group closed orders by creation date", func() {
			// Act
			rows, err := s.Reports().SalesReport(ctx, "2024-03-01", "2024-03-31")

			// Assert
			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(HaveLen(2))
			Expect(rows[0].Date).To(Equal("2024-03-31"))
			Expect(rows[0].TotalSales.String()).To(Equal("30000"))
			Expect(rows[0].OrderCount).To(Equal(int64(1)))
			Expect(rows[1].Date).To(Equal("2024-03-10"))
			Expect(rows[1].TotalSales.String()).To(Equal("150000"))
			Expect(rows[1].OrderCount).To(Equal(int64(2)))
		})

		It("should include both range boundaries", func() {
			rows, err := s.Reports().SalesReport(ctx, "2024-03-31", "2024-04-01")
			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(HaveLen(2))
			Expect(rows[0].Date).To(Equal("2024-04-01"))
			Expect(rows[1].Date).To(Equal("2024-03-31"))
		})

		It("should return an empty list when nothing matches", func() {
			rows, err := s.Reports().SalesReport(ctx, "2023-01-01", "2023-12-31")
			Expect(err).NotTo(HaveOccurred())
			Expect(rows).NotTo(BeNil())
			Expect(rows).To(BeEmpty())
		})

		DescribeTable("should reject invalid ranges",
			func(start, end string) {
				_, err := s.Reports().SalesReport(ctx, start, end)
				Expect(srvErrors.IsValidationError(err)).To(BeTrue())
			},
			Entry("missing start", "", "2024-03-31"),
			Entry("missing end", "2024-03-01", ""),
			Entry("malformed start", "2024/03/01", "2024-03-31"),
			Entry("start after end", "2024-04-01", "2024-03-01"),
		)
	})

	Context("MonthlyReport", func() {
		// Given closed orders completed in March, one without line items
		// When we report March
		// Then each order comes with its client and item total, latest completion first
		It("should list closed orders completed in the month", func() {
			// Act
			rows, err := s.Reports().MonthlyReport(ctx, 2024, 3)

			// Assert
			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(HaveLen(3))

			Expect(rows[0].ProjectName).To(Equal("D"))
			Expect(rows[0].ClientName).To(Equal("Beta"))
			Expect(rows[0].CompletionDate).To(Equal(models.Date("2024-03-31")))
			Expect(rows[0].ItemTotal.Valid).To(BeTrue())
			Expect(rows[0].ItemTotal.Decimal.String()).To(Equal("30000"))

			Expect(rows[1].ProjectName).To(Equal("B"))
			Expect(rows[1].ItemTotal.Valid).To(BeFalse())

			Expect(rows[2].ProjectName).To(Equal("A"))
			Expect(rows[2].ClientName).To(Equal("Acme"))
			Expect(rows[2].ItemTotal.Decimal.String()).To(Equal("72345"))
		})

		It("should use the real length of the month", func() {
			rows, err := s.Reports().MonthlyReport(ctx, 2024, 4)
			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(HaveLen(1))
			Expect(rows[0].ProjectName).To(Equal("E"))
			Expect(rows[0].ClientName).To(BeEmpty())
		})

		It("should reject an invalid month", func() {
			_, err := s.Reports().MonthlyReport(ctx, 2024, 13)
			Expect(srvErrors.IsValidationError(err)).To(BeTrue())
		})
	})

	Context("Dashboard", func() {
		It("should summarize clients, orders and revenue", func() {
			d, err := s.Reports().Dashboard(ctx)

			Expect(err).NotTo(HaveOccurred())
			Expect(d.ClientCount).To(Equal(int64(2)))
			Expect(d.OrderCount).To(Equal(int64(5)))
			Expect(d.InProgressCount).To(Equal(int64(1)))
			Expect(d.Revenue.String()).To(Equal("180999"))
			Expect(d.ByStatus).To(Equal([]models.StatusCount{
				{Status: models.OrderStatusQuoting, Count: 0},
				{Status: models.OrderStatusReceived, Count: 0},
				{Status: models.OrderStatusInProgress, Count: 1},
				{Status: models.OrderStatusCompleted, Count: 3},
				{Status: models.OrderStatusInvoiced, Count: 0},
				{Status: models.OrderStatusPaid, Count: 1},
				{Status: models.OrderStatusDropped, Count: 0},
			}))
		})
	})

	Context("TaxSummary", func() {
		It("should total line items per tax rate with the tax rounded down", func() {
			rows, err := s.Reports().TaxSummary(ctx, "2024-03-01", "2024-03-31")

			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(HaveLen(2))
			Expect(rows[0].TaxRate.String()).To(Equal("10"))
			Expect(rows[0].Subtotal.String()).To(Equal("90000"))
			Expect(rows[0].Tax.String()).To(Equal("9000"))
			Expect(rows[0].Items).To(Equal(int64(2)))
			Expect(rows[1].TaxRate.String()).To(Equal("8"))
			Expect(rows[1].Subtotal.String()).To(Equal("12345"))
			Expect(rows[1].Tax.String()).To(Equal("987"))
		})
	})

	Context("TopClients", func() {
		It("should rank clients by realized sales", func() {
			rows, err := s.Reports().TopClients(ctx, "2024-03-01", "2024-04-30", 0)

			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(HaveLen(2))
			Expect(rows[0].ClientID).To(Equal(acme))
			Expect(rows[0].ClientName).To(Equal("Acme"))
			Expect(rows[0].TotalSales.String()).To(Equal("150000"))
			Expect(rows[0].OrderCount).To(Equal(int64(2)))
			Expect(rows[1].ClientID).To(Equal(beta))
			Expect(rows[1].TotalSales.String()).To(Equal("30000"))
		})

		It("should honour the limit", func() {
			rows, err := s.Reports().TopClients(ctx, "2024-03-01", "2024-04-30", 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(HaveLen(1))
			Expect(rows[0].ClientName).To(Equal("Acme"))
		})
	})

	Context("with fractional amounts", func() {
		// Given two closed May orders of 0.1 and 0.2 with line items of 0.1 and 0.2
		// When the reports add them up
		// Then every total is exact to the sen
		BeforeEach(func() {
			clock.Set(time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC))
			x := createOrder(models.Order{ClientID: &acme, ProjectName: "X", Status: models.OrderStatusCompleted, TotalAmount: decimal.RequireFromString("0.1")})
			createOrder(models.Order{ClientID: &acme, ProjectName: "Y", Status: models.OrderStatusCompleted, TotalAmount: decimal.RequireFromString("0.2")})
			for _, amount := range []string{"0.1", "0.2"} {
				_, err := s.OrderItems().Create(ctx, models.OrderItem{
					OrderID:     x,
					ServiceName: "調整",
					UnitPrice:   decimal.RequireFromString(amount),
					TaxRate:     decimal.NewFromInt(10),
					Amount:      decimal.RequireFromString(amount),
				})
				Expect(err).NotTo(HaveOccurred())
			}
		})

		It("should not leak float noise into sales totals", func() {
			// Act
			rows, err := s.Reports().SalesReport(ctx, "2024-05-01", "2024-05-31")

			// Assert
			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(HaveLen(1))
			Expect(rows[0].TotalSales.String()).To(Equal("0.3"))
		})

		It("should not leak float noise into item totals", func() {
			rows, err := s.Reports().MonthlyReport(ctx, 2024, 5)

			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(HaveLen(2))
			var itemTotals []string
			for _, r := range rows {
				if r.ItemTotal.Valid {
					itemTotals = append(itemTotals, r.ItemTotal.Decimal.String())
				}
			}
			Expect(itemTotals).To(Equal([]string{"0.3"}))
		})

		It("should not leak float noise into revenue", func() {
			d, err := s.Reports().Dashboard(ctx)

			Expect(err).NotTo(HaveOccurred())
			Expect(d.Revenue.String()).To(Equal("180999.3"))
		})

		It("should not leak float noise into the tax summary", func() {
			rows, err := s.Reports().TaxSummary(ctx, "2024-05-01", "2024-05-31")

			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(HaveLen(1))
			Expect(rows[0].Subtotal.String()).To(Equal("0.3"))
			Expect(rows[0].Tax.String()).To(Equal("0"))
		})

		It("should not leak float noise into client rankings", func() {
			rows, err := s.Reports().TopClients(ctx, "2024-05-01", "2024-05-31", 0)

			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(HaveLen(1))
			Expect(rows[0].TotalSales.String()).To(Equal("0.3"))
		})
	})
})

var _ = Describe("MonthBounds", func() {
	DescribeTable("should return the first and last day",
		func(year, month int, first, last string) {
			start, end, err := store.MonthBounds(year, month)
			Expect(err).NotTo(HaveOccurred())
			Expect(start).To(Equal(first))
			Expect(end).To(Equal(last))
		},
		Entry("leap February", 2024, 2, "2024-02-01", "2024-02-29"),
		Entry("February", 2023, 2, "2023-02-01", "2023-02-28"),
		Entry("April", 2024, 4, "2024-04-01", "2024-04-30"),
		Entry("December", 2024, 12, "2024-12-01", "2024-12-31"),
	)

	It("should reject month zero", func() {
		_, _, err := store.MonthBounds(2024, 0)
		Expect(srvErrors.IsValidationError(err)).To(BeTrue())
	})
})
