package models_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kantanpro/kantanpro/internal/models"
)

var _ = Describe("OrderStatus", func() {
	It("should parse every known status", func() {
		for _, status := range models.OrderStatuses {
			parsed, err := models.ParseOrderStatus(string(status))
			Expect(err).NotTo(HaveOccurred())
			Expect(parsed).To(Equal(status))
		}
	})

	It("should reject unknown statuses", func() {
		_, err := models.ParseOrderStatus("archived")
		Expect(err).To(MatchError(ContainSubstring("archived")))
	})

	It("should count only 完了 and 支払い as closed", func() {
		closed := make([]models.OrderStatus, 0)
		for _, status := range models.OrderStatuses {
			if status.IsClosed() {
				closed = append(closed, status)
			}
		}
		Expect(closed).To(ConsistOf(models.ClosedStatuses))
		Expect(closed).To(ConsistOf(models.OrderStatusCompleted, models.OrderStatusPaid))
	})
})

var _ = Describe("Supplier", func() {
	DescribeTable("SkillList",
		func(skills string, expected []string) {
			Expect(models.Supplier{Skills: skills}.SkillList()).To(Equal(expected))
		},
		Entry("empty", "", []string(nil)),
		Entry("single", "デザイン", []string{"デザイン"}),
		Entry("trimmed", " 撮影 , 編集,, ", []string{"撮影", "編集"}),
	)
})
