package store_test

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kantanpro/kantanpro/internal/models"
	"github.com/kantanpro/kantanpro/internal/store"
	srvErrors "github.com/kantanpro/kantanpro/pkg/errors"
)

var _ = Describe("ChatStore", func() {
	var (
		ctx     context.Context
		clock   *fakeClock
		s       *store.Store
		db      *sqlx.DB
		orderID int64
	)

	BeforeEach(func() {
		ctx = context.Background()
		clock = newFakeClock()
		s, db = newTestStore(ctx, clock)

		res, err := s.Orders().Create(ctx, models.Order{ProjectName: "Site Build"})
		Expect(err).NotTo(HaveOccurred())
		orderID = res.ID
	})

	AfterEach(func() {
		if db != nil {
			db.Close()
		}
	})

	// Given three messages posted one minute apart
	// When we list them with a limit of two
	// Then the two most recent come back, newest first
	It("should return the newest messages first up to the limit", func() {
		// Arrange
		for i := 1; i <= 3; i++ {
			_, err := s.Chat().Append(ctx, orderID, "佐藤", fmt.Sprintf("message %d", i))
			Expect(err).NotTo(HaveOccurred())
			clock.Advance(time.Minute)
		}

		// Act
		messages, err := s.Chat().ListForOrder(ctx, orderID, 2)

		// Assert
		Expect(err).NotTo(HaveOccurred())
		Expect(messages).To(HaveLen(2))
		Expect(messages[0].Message).To(Equal("message 3"))
		Expect(messages[1].Message).To(Equal("message 2"))
		Expect(messages[0].UserName).To(Equal("佐藤"))
		Expect(messages[0].CreatedAt).To(BeTemporally(">", messages[1].CreatedAt))
	})

	It("should order messages with the same timestamp by id", func() {
		for _, m := range []string{"first", "second"} {
			_, err := s.Chat().Append(ctx, orderID, "", m)
			Expect(err).NotTo(HaveOccurred())
		}

		messages, err := s.Chat().ListForOrder(ctx, orderID, 0)
		Expect(err).NotTo(HaveOccurred())
		Expect(messages).To(HaveLen(2))
		Expect(messages[0].Message).To(Equal("second"))
		Expect(messages[0].UserName).To(BeEmpty())
	})

	It("should apply the default limit", func() {
		for i := 0; i < store.DefaultChatLimit+5; i++ {
			_, err := s.Chat().Append(ctx, orderID, "bot", "ping")
			Expect(err).NotTo(HaveOccurred())
		}

		messages, err := s.Chat().ListForOrder(ctx, orderID, 0)
		Expect(err).NotTo(HaveOccurred())
		Expect(messages).To(HaveLen(store.DefaultChatLimit))
	})

	It("should only return messages of the given order", func() {
		other, err := s.Orders().Create(ctx, models.Order{ProjectName: "Other"})
		Expect(err).NotTo(HaveOccurred())
		_, err = s.Chat().Append(ctx, other.ID, "田中", "別件です")
		Expect(err).NotTo(HaveOccurred())

		messages, err := s.Chat().ListForOrder(ctx, orderID, 10)
		Expect(err).NotTo(HaveOccurred())
		Expect(messages).To(BeEmpty())
	})

	It("should reject an empty message", func() {
		_, err := s.Chat().Append(ctx, orderID, "佐藤", "   ")
		Expect(srvErrors.IsValidationError(err)).To(BeTrue())
	})

	It("should fail with StorageError for an unknown order", func() {
		_, err := s.Chat().Append(ctx, 999, "佐藤", "hello")
		Expect(srvErrors.IsStorageError(err)).To(BeTrue())
	})
})
