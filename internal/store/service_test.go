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

var _ = Describe("ServiceStore", func() {
	var (
		ctx   context.Context
		clock *fakeClock
		s     *store.Store
		db    *sqlx.DB
	)

	BeforeEach(func() {
		ctx = context.Background()
		clock = newFakeClock()
		s, db = newTestStore(ctx, clock)
	})

	AfterEach(func() {
		if db != nil {
			db.Close()
		}
	})

	Context("Create", func() {
		// Given a service without unit or tax rate
		// When we create it
		// Then unit defaults to 式 and tax rate to 10
		It("should apply the default unit and tax rate", func() {
			res, err := s.Services().Create(ctx, models.Service{
				Name:      "Webサイト制作",
				UnitPrice: decimal.NewFromInt(500000),
			})
			Expect(err).NotTo(HaveOccurred())

			got, err := s.Services().Get(ctx, res.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Unit).To(Equal("式"))
			Expect(got.TaxRate.Equal(decimal.NewFromInt(10))).To(BeTrue())
			Expect(got.UnitPrice.Equal(decimal.NewFromInt(500000))).To(BeTrue())
		})

		It("should keep fractional prices exactly", func() {
			res, err := s.Services().Create(ctx, models.Service{
				Name:      "翻訳",
				UnitPrice: decimal.RequireFromString("12.5"),
				Unit:      "文字",
				TaxRate:   decimal.NewFromInt(8),
			})
			Expect(err).NotTo(HaveOccurred())

			got, err := s.Services().Get(ctx, res.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.UnitPrice.String()).To(Equal("12.5"))
			Expect(got.Unit).To(Equal("文字"))
			Expect(got.TaxRate.String()).To(Equal("8"))
		})

		It("should reject a negative unit price", func() {
			_, err := s.Services().Create(ctx, models.Service{Name: "x", UnitPrice: decimal.NewFromInt(-1)})
			Expect(srvErrors.IsValidationError(err)).To(BeTrue())
		})

		It("should reject an empty name", func() {
			_, err := s.Services().Create(ctx, models.Service{UnitPrice: decimal.NewFromInt(1)})
			Expect(srvErrors.IsValidationError(err)).To(BeTrue())
		})
	})

	Context("Update", func() {
		It("should replace the fields and keep created_at", func() {
			res, err := s.Services().Create(ctx, models.Service{Name: "保守・運用", UnitPrice: decimal.NewFromInt(50000), Unit: "月"})
			Expect(err).NotTo(HaveOccurred())
			created := clock.Now()
			clock.Advance(24 * time.Hour)

			upd, err := s.Services().Update(ctx, res.ID, models.Service{
				Name:      "保守・運用プラス",
				UnitPrice: decimal.NewFromInt(80000),
				Unit:      "月",
				TaxRate:   decimal.NewFromInt(10),
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(upd.Changes).To(Equal(int64(1)))

			got, err := s.Services().Get(ctx, res.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Name).To(Equal("保守・運用プラス"))
			Expect(got.UnitPrice.Equal(decimal.NewFromInt(80000))).To(BeTrue())
			Expect(got.CreatedAt).To(BeTemporally("==", created))
			Expect(got.UpdatedAt).To(BeTemporally("==", clock.Now()))
		})
	})

	Context("Delete", func() {
		// Given a service used by an order line
		// When we delete the service
		// Then the line keeps its service_name snapshot and loses the reference
		It("should detach order items and keep their snapshot", func() {
			svc, err := s.Services().Create(ctx, models.Service{Name: "ロゴデザイン", UnitPrice: decimal.NewFromInt(100000)})
			Expect(err).NotTo(HaveOccurred())
			order, err := s.Orders().Create(ctx, models.Order{ProjectName: "Branding"})
			Expect(err).NotTo(HaveOccurred())
			item, err := s.OrderItems().Create(ctx, models.OrderItem{
				OrderID:   order.ID,
				ServiceID: &svc.ID,
				UnitPrice: decimal.NewFromInt(100000),
				Amount:    decimal.NewFromInt(100000),
			})
			Expect(err).NotTo(HaveOccurred())

			del, err := s.Services().Delete(ctx, svc.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(del.Changes).To(Equal(int64(1)))

			got, err := s.OrderItems().Get(ctx, item.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.ServiceID).To(BeNil())
			Expect(got.ServiceName).To(Equal("ロゴデザイン"))
		})

		It("should report zero changes for an unknown id", func() {
			del, err := s.Services().Delete(ctx, 77)
			Expect(err).NotTo(HaveOccurred())
			Expect(del.Changes).To(BeZero())
		})
	})
})
