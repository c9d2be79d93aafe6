package query_test

import (
	"context"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/hr-records/internal/query"
)

var _ = Describe("Paginate", func() {
	var seed []unit

	BeforeEach(func() {
		seed = seedUnits()
	})

	DescribeTable("NewPage",
		func(number, size, wantNumber, wantSize int) {
			page := query.NewPage(number, size)
			Expect(page.Number).To(Equal(wantNumber))
			Expect(page.Size).To(Equal(wantSize))
		},
		Entry("keeps valid values", 3, 25, 3, 25),
		Entry("clamps page number below 1", 0, 5, 1, 5),
		Entry("clamps negative page number", -4, 5, 1, 5),
		Entry("defaults page size below 1", 1, 0, 1, query.DefaultPageSize),
		Entry("caps oversized pages", 1, 5000, 1, query.MaxPageSize),
	)

	It("should window the collection", func() {
		page := query.Paginate(units, seed, "", query.NewPage(2, 2))
		Expect(names(page)).To(Equal([]string{"Marketing", "Finance"}))
	})

	It("should return a short last page", func() {
		page := query.Paginate(units, seed, "", query.NewPage(3, 2))
		Expect(names(page)).To(Equal([]string{"Operations"}))
	})

	It("should return nothing past the end", func() {
		Expect(query.Paginate(units, seed, "", query.NewPage(9, 2))).To(BeEmpty())
	})

	It("should return nothing for a page number whose offset overflows", func() {
		var page []unit
		Expect(func() {
			page = query.Paginate(units, seed, "", query.NewPage(math.MaxInt, query.DefaultPageSize))
		}).NotTo(Panic())
		Expect(page).To(BeEmpty())
	})

	It("should report counts with an empty page for the largest page number", func() {
		records, count, err := query.Execute(context.Background(), units, seed, query.Spec[unit]{
			PageNumber: math.MaxInt,
			PageSize:   query.MaxPageSize,
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(records).To(BeEmpty())
		Expect(count).To(Equal(query.RecordsCount{Total: 5, Filtered: 5}))
	})

	DescribeTable("Offset",
		func(page query.Page, want int) {
			Expect(page.Offset()).To(Equal(want))
		},
		Entry("first page", query.Page{Number: 1, Size: 10}, 0),
		Entry("third page", query.Page{Number: 3, Size: 10}, 20),
		Entry("saturates instead of overflowing", query.Page{Number: math.MaxInt, Size: 2}, math.MaxInt),
		Entry("zero page is the start", query.Page{}, 0),
	)

	It("should order ascending by default", func() {
		page := query.Paginate(units, seed, "name", query.NewPage(1, 10))
		Expect(names(page)).To(Equal([]string{"Engineering", "Finance", "Human Resources", "Marketing", "Operations"}))
	})

	It("should honour a descending direction in any case", func() {
		page := query.Paginate(units, seed, "budget DESC", query.NewPage(1, 2))
		Expect(names(page)).To(Equal([]string{"Engineering", "Finance"}))
	})

	It("should order by several keys", func() {
		page := query.Paginate(units, seed, "level asc,founded desc", query.NewPage(1, 10))
		Expect(names(page)).To(Equal([]string{"Marketing", "Engineering", "Human Resources", "Finance", "Operations"}))
	})

	It("should sort absent optional values first", func() {
		page := query.Paginate(units, seed, "parentId,id", query.NewPage(1, 10))
		Expect(names(page)).To(Equal([]string{"Human Resources", "Marketing", "Operations", "Engineering", "Finance"}))
	})

	It("should not reorder the input", func() {
		_ = query.Paginate(units, seed, "name desc", query.NewPage(1, 10))
		Expect(names(seed)).To(Equal(names(seedUnits())))
	})
})
