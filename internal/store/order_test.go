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

var _ = Describe("OrderStore", func() {
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

	// Given client Acme and an order for it in status 受注
	// When the order is moved to 完了 and completed orders are listed
	// Then exactly that order is returned, dated today and decorated with Acme
	It("should complete an order and list it with its client name", func() {
		// Arrange
		client, err := s.Clients().Create(ctx, models.Client{Name: "Acme"})
		Expect(err).NotTo(HaveOccurred())
		Expect(client.ID).To(Equal(int64(1)))

		order, err := s.Orders().Create(ctx, models.Order{
			ClientID:    &client.ID,
			ProjectName: "Site Build",
			Status:      models.OrderStatusReceived,
			TotalAmount: decimal.NewFromInt(100000),
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(order.ID).To(Equal(int64(1)))

		// Act
		upd, err := s.Orders().UpdateStatus(ctx, order.ID, models.OrderStatusCompleted)
		Expect(err).NotTo(HaveOccurred())
		Expect(upd.Changes).To(Equal(int64(1)))

		orders, err := s.Orders().ListWithClientName(ctx,
			store.WithLimit(10), store.WithOffset(0), store.ByStatus(models.OrderStatusCompleted))

		// Assert
		Expect(err).NotTo(HaveOccurred())
		Expect(orders).To(HaveLen(1))
		Expect(orders[0].ID).To(Equal(order.ID))
		Expect(orders[0].ClientName).To(Equal("Acme"))
		Expect(orders[0].Status).To(Equal(models.OrderStatusCompleted))
		Expect(orders[0].CompletionDate).To(Equal(models.Date("2024-03-10")))
		Expect(orders[0].TotalAmount.Equal(decimal.NewFromInt(100000))).To(BeTrue())
	})

	Context("Create", func() {
		It("should default the status to 受注", func() {
			res, err := s.Orders().Create(ctx, models.Order{ProjectName: "LP制作"})
			Expect(err).NotTo(HaveOccurred())

			got, err := s.Orders().Get(ctx, res.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Status).To(Equal(models.OrderStatusReceived))
			Expect(got.CompletionDate.IsZero()).To(BeTrue())
			Expect(got.ClientID).To(BeNil())
		})

		It("should keep the deadline as a calendar date", func() {
			res, err := s.Orders().Create(ctx, models.Order{ProjectName: "LP制作", Deadline: "2024-04-30"})
			Expect(err).NotTo(HaveOccurred())

			got, err := s.Orders().Get(ctx, res.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Deadline).To(Equal(models.Date("2024-04-30")))
		})

		It("should stamp the completion date of an order created as 完了", func() {
			res, err := s.Orders().Create(ctx, models.Order{ProjectName: "Done", Status: models.OrderStatusCompleted})
			Expect(err).NotTo(HaveOccurred())

			got, err := s.Orders().Get(ctx, res.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.CompletionDate).To(Equal(models.Date("2024-03-10")))
		})

		It("should reject an unknown status", func() {
			_, err := s.Orders().Create(ctx, models.Order{ProjectName: "x", Status: "shipped"})
			Expect(srvErrors.IsValidationError(err)).To(BeTrue())
		})

		It("should reject an empty project name", func() {
			_, err := s.Orders().Create(ctx, models.Order{ProjectName: " "})
			Expect(srvErrors.IsValidationError(err)).To(BeTrue())
		})

		It("should reject a malformed deadline", func() {
			_, err := s.Orders().Create(ctx, models.Order{ProjectName: "x", Deadline: "30/04/2024"})
			Expect(srvErrors.IsValidationError(err)).To(BeTrue())
		})

		// Given foreign keys are enforced
		// When an order references a client that does not exist
		// Then the engine rejects it with a StorageError
		It("should fail with StorageError for an unknown client", func() {
			missing := int64(999)
			_, err := s.Orders().Create(ctx, models.Order{ClientID: &missing, ProjectName: "x"})
			Expect(srvErrors.IsStorageError(err)).To(BeTrue())
		})
	})

	Context("UpdateStatus", func() {
		var orderID int64

		BeforeEach(func() {
			res, err := s.Orders().Create(ctx, models.Order{ProjectName: "Site Build"})
			Expect(err).NotTo(HaveOccurred())
			orderID = res.ID
		})

		It("should set completion_date to today when moving to 完了", func() {
			clock.Set(time.Date(2024, 5, 1, 23, 30, 0, 0, time.UTC))

			_, err := s.Orders().UpdateStatus(ctx, orderID, models.OrderStatusCompleted)
			Expect(err).NotTo(HaveOccurred())

			got, err := s.Orders().Get(ctx, orderID)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.CompletionDate).To(Equal(models.Date("2024-05-01")))
			Expect(got.UpdatedAt).To(BeTemporally("==", clock.Now()))
		})

		It("should stamp the UTC calendar day when completed outside UTC", func() {
			jst := time.FixedZone("JST", 9*3600)
			clock.Set(time.Date(2024, 5, 2, 7, 0, 0, 0, jst))

			_, err := s.Orders().UpdateStatus(ctx, orderID, models.OrderStatusCompleted)
			Expect(err).NotTo(HaveOccurred())

			got, err := s.Orders().Get(ctx, orderID)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.CompletionDate).To(Equal(models.Date("2024-05-01")))
			Expect(got.UpdatedAt).To(BeTemporally("==", clock.Now()))
		})

		It("should not set completion_date for other statuses", func() {
			_, err := s.Orders().UpdateStatus(ctx, orderID, models.OrderStatusInProgress)
			Expect(err).NotTo(HaveOccurred())

			got, err := s.Orders().Get(ctx, orderID)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Status).To(Equal(models.OrderStatusInProgress))
			Expect(got.CompletionDate.IsZero()).To(BeTrue())
		})

		// Documented behaviour: leaving 完了 keeps the last completion date.
		It("should keep completion_date when moving away from 完了", func() {
			_, err := s.Orders().UpdateStatus(ctx, orderID, models.OrderStatusCompleted)
			Expect(err).NotTo(HaveOccurred())
			clock.Advance(72 * time.Hour)

			_, err = s.Orders().UpdateStatus(ctx, orderID, models.OrderStatusInvoiced)
			Expect(err).NotTo(HaveOccurred())

			got, err := s.Orders().Get(ctx, orderID)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Status).To(Equal(models.OrderStatusInvoiced))
			Expect(got.CompletionDate).To(Equal(models.Date("2024-03-10")))
		})

		It("should reject an unknown status without touching the row", func() {
			_, err := s.Orders().UpdateStatus(ctx, orderID, "archived")
			Expect(srvErrors.IsValidationError(err)).To(BeTrue())

			got, err := s.Orders().Get(ctx, orderID)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Status).To(Equal(models.OrderStatusReceived))
		})

		It("should report zero changes for an unknown order", func() {
			upd, err := s.Orders().UpdateStatus(ctx, 999, models.OrderStatusPaid)
			Expect(err).NotTo(HaveOccurred())
			Expect(upd.Changes).To(BeZero())
		})
	})

	Context("Update", func() {
		It("should keep an existing completion date when none is supplied", func() {
			res, err := s.Orders().Create(ctx, models.Order{ProjectName: "Site", Status: models.OrderStatusCompleted})
			Expect(err).NotTo(HaveOccurred())
			clock.Advance(48 * time.Hour)

			_, err = s.Orders().Update(ctx, res.ID, models.Order{
				ProjectName: "Site v2",
				Status:      models.OrderStatusPaid,
				TotalAmount: decimal.NewFromInt(550000),
				TaxAmount:   decimal.NewFromInt(50000),
			})
			Expect(err).NotTo(HaveOccurred())

			got, err := s.Orders().Get(ctx, res.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.ProjectName).To(Equal("Site v2"))
			Expect(got.Status).To(Equal(models.OrderStatusPaid))
			Expect(got.CompletionDate).To(Equal(models.Date("2024-03-10")))
			Expect(got.TaxAmount.Equal(decimal.NewFromInt(50000))).To(BeTrue())
		})

		It("should stamp today when moved to 完了 without a completion date", func() {
			res, err := s.Orders().Create(ctx, models.Order{ProjectName: "Site"})
			Expect(err).NotTo(HaveOccurred())
			clock.Set(time.Date(2024, 6, 2, 12, 0, 0, 0, time.UTC))

			_, err = s.Orders().Update(ctx, res.ID, models.Order{ProjectName: "Site", Status: models.OrderStatusCompleted})
			Expect(err).NotTo(HaveOccurred())

			got, err := s.Orders().Get(ctx, res.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.CompletionDate).To(Equal(models.Date("2024-06-02")))
		})
	})

	Context("List", func() {
		BeforeEach(func() {
			for _, st := range []models.OrderStatus{
				models.OrderStatusQuoting,
				models.OrderStatusInProgress,
				models.OrderStatusInProgress,
				models.OrderStatusPaid,
			} {
				_, err := s.Orders().Create(ctx, models.Order{ProjectName: string(st), Status: st})
				Expect(err).NotTo(HaveOccurred())
				clock.Advance(time.Hour)
			}
		})

		It("should filter by status", func() {
			orders, err := s.Orders().List(ctx, store.ByStatus(models.OrderStatusInProgress))
			Expect(err).NotTo(HaveOccurred())
			Expect(orders).To(HaveLen(2))
			for _, o := range orders {
				Expect(o.Status).To(Equal(models.OrderStatusInProgress))
			}
		})

		It("should return newest orders first", func() {
			orders, err := s.Orders().ListWithClientName(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(orders).To(HaveLen(4))
			Expect(orders[0].Status).To(Equal(models.OrderStatusPaid))
			Expect(orders[3].Status).To(Equal(models.OrderStatusQuoting))
			Expect(orders[0].ClientName).To(BeEmpty())
		})
	})

	Context("Delete", func() {
		// Given an order with line items, cost items and chat messages
		// When we delete the order
		// Then everything it owns is deleted with it
		It("should cascade to the rows the order owns", func() {
			res, err := s.Orders().Create(ctx, models.Order{ProjectName: "Site"})
			Expect(err).NotTo(HaveOccurred())
			_, err = s.OrderItems().Create(ctx, models.OrderItem{OrderID: res.ID, ServiceName: "制作"})
			Expect(err).NotTo(HaveOccurred())
			_, err = s.CostItems().Create(ctx, models.CostItem{OrderID: res.ID, ItemName: "外注"})
			Expect(err).NotTo(HaveOccurred())
			_, err = s.Chat().Append(ctx, res.ID, "佐藤", "了解です")
			Expect(err).NotTo(HaveOccurred())

			del, err := s.Orders().Delete(ctx, res.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(del.Changes).To(Equal(int64(1)))

			items, err := s.OrderItems().ListForOrder(ctx, res.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(items).To(BeEmpty())
			costs, err := s.CostItems().ListForOrder(ctx, res.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(costs).To(BeEmpty())
			msgs, err := s.Chat().ListForOrder(ctx, res.ID, 10)
			Expect(err).NotTo(HaveOccurred())
			Expect(msgs).To(BeEmpty())

			_, err = s.Orders().Get(ctx, res.ID)
			Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
		})

		It("should report zero changes for an unknown order", func() {
			del, err := s.Orders().Delete(ctx, 31337)
			Expect(err).NotTo(HaveOccurred())
			Expect(del.Changes).To(BeZero())
		})
	})
})
