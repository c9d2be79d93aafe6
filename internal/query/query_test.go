package query_test

import (
	"context"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/hr-records/internal/query"
)

var _ = Describe("Execute", func() {
	var (
		ctx  context.Context
		seed []unit
	)

	BeforeEach(func() {
		ctx = context.Background()
		seed = seedUnits()
	})

	It("should page the unfiltered collection", func() {
		records, count, err := query.Execute(ctx, units, seed, query.Spec[unit]{PageNumber: 2, PageSize: 2})
		Expect(err).NotTo(HaveOccurred())
		Expect(records).To(HaveLen(2))
		Expect(count).To(Equal(query.RecordsCount{Total: 5, Filtered: 5}))
	})

	It("should count filtered records before windowing", func() {
		spec := query.Spec[unit]{
			Filter:     query.Contains(func(u *unit) string { return u.Name }, "Engineering"),
			PageNumber: 1,
			PageSize:   10,
		}
		records, count, err := query.Execute(ctx, units, seed, spec)
		Expect(err).NotTo(HaveOccurred())
		Expect(records).To(HaveLen(1))
		Expect(count.Filtered).To(Equal(int64(1)))
		Expect(count.Total).To(Equal(int64(5)))
	})

	It("should shape, order and window together", func() {
		spec := query.Spec[unit]{
			Fields:     "name",
			OrderBy:    "name desc",
			PageNumber: 1,
			PageSize:   2,
		}
		records, _, err := query.Execute(ctx, units, seed, spec)
		Expect(err).NotTo(HaveOccurred())
		first, _ := records[0].Get("name")
		second, _ := records[1].Get("name")
		Expect([]any{first, second}).To(Equal([]any{"Operations", "Marketing"}))
		Expect(records[0].Keys()).To(Equal([]string{"name"}))
	})

	DescribeTable("should keep total >= filtered >= page length and page length <= page size",
		func(term string, pageNumber, pageSize int) {
			spec := query.Spec[unit]{
				Filter:     query.Search(units, []string{"name", "code"}, term),
				PageNumber: pageNumber,
				PageSize:   pageSize,
			}
			records, count, err := query.Execute(ctx, units, seed, spec)
			Expect(err).NotTo(HaveOccurred())
			Expect(count.Total).To(BeNumerically(">=", count.Filtered))
			Expect(count.Filtered).To(BeNumerically(">=", len(records)))
			Expect(len(records)).To(BeNumerically("<=", query.NewPage(pageNumber, pageSize).Size))
		},
		Entry("everything", "", 1, 10),
		Entry("small pages", "e", 2, 1),
		Entry("no matches", "zzz", 1, 3),
		Entry("defaults", "o", 0, 0),
	)

	It("should report cancellation unchanged", func() {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		records, _, err := query.Execute(cancelled, units, seed, query.Spec[unit]{})
		Expect(err).To(MatchError(context.Canceled))
		Expect(records).To(BeNil())
	})

	It("should fall back to canonical fields", func() {
		records, _, err := query.Execute(ctx, units, seed, query.Spec[unit]{Fields: ""})
		Expect(err).NotTo(HaveOccurred())
		Expect(strings.Join(records[0].Keys(), ",")).To(Equal(strings.Join(units.CanonicalFields(), ",")))
	})
})
