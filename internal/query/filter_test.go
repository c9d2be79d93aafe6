package query_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"

	"github.com/frahmantamala/hr-records/internal/query"
)

func names(items []unit) []string {
	out := make([]string, len(items))
	for i, u := range items {
		out[i] = u.Name
	}
	return out
}

var _ = Describe("Filter predicates", func() {
	var (
		seed   []unit
		byName = func(u *unit) string { return u.Name }
		byCode = func(u *unit) string { return u.Code }
	)

	BeforeEach(func() {
		seed = seedUnits()
	})

	It("should place no constraint for absent values", func() {
		Expect(query.Contains(byName, "")).To(BeNil())
		Expect(query.Equal(byCode, "")).To(BeNil())
		Expect(query.EnumEqual(func(u *unit) level { return u.Level }, nil)).To(BeNil())
		Expect(query.DecimalRange(func(u *unit) decimal.Decimal { return u.Budget }, nil, nil)).To(BeNil())
		Expect(query.DateRange[unit](nil, nil, nil)).To(BeNil())
		Expect(query.And[unit]()).To(BeNil())
		Expect(query.Apply(seed, nil)).To(HaveLen(5))
	})

	It("should match substrings case-insensitively", func() {
		Expect(names(query.Apply(seed, query.Contains(byName, "ENGIN")))).To(Equal([]string{"Engineering"}))
	})

	It("should match identifiers exactly", func() {
		Expect(names(query.Apply(seed, query.Equal(byCode, "FIN")))).To(Equal([]string{"Finance"}))
		Expect(query.Apply(seed, query.Equal(byCode, "fin"))).To(BeEmpty())
		Expect(query.Apply(seed, query.Equal(byCode, "FI"))).To(BeEmpty())
	})

	It("should match enums", func() {
		division := level("division")
		matched := query.Apply(seed, query.EnumEqual(func(u *unit) level { return u.Level }, &division))
		Expect(names(matched)).To(ConsistOf("Human Resources", "Finance"))
	})

	It("should treat decimal ranges as inclusive with optional bounds", func() {
		get := func(u *unit) decimal.Decimal { return u.Budget }
		lower, upper := decimal.NewFromInt(300), decimal.NewFromInt(700)

		Expect(names(query.Apply(seed, query.DecimalRange(get, &lower, &upper)))).
			To(ConsistOf("Human Resources", "Marketing", "Finance"))
		Expect(names(query.Apply(seed, query.DecimalRange(get, &upper, nil)))).
			To(ConsistOf("Engineering", "Finance"))
		Expect(names(query.Apply(seed, query.DecimalRange(get, nil, &lower)))).
			To(ConsistOf("Marketing", "Operations"))
	})

	It("should treat date ranges as inclusive with optional bounds", func() {
		from, to := date(2001, 1, 1), date(2010, 3, 15)
		matched := query.Apply(seed, query.DateRange(func(u *unit) time.Time { return u.Founded }, &from, &to))
		Expect(names(matched)).To(ConsistOf("Human Resources", "Engineering", "Marketing"))
	})

	It("should AND-compose predicates and skip absent ones", func() {
		division := level("division")
		p := query.And(
			query.Contains(byName, "NAN"),
			nil,
			query.EnumEqual(func(u *unit) level { return u.Level }, &division),
		)
		Expect(names(query.Apply(seed, p))).To(Equal([]string{"Finance"}))
	})

	Describe("Search", func() {
		whitelist := []string{"name", "code", "budget", "unknown"}

		It("should OR-compose substring matches across the whitelist", func() {
			matched := query.Apply(seed, query.Search(units, whitelist, "hr"))
			Expect(names(matched)).To(ConsistOf("Human Resources"))

			matched = query.Apply(seed, query.Search(units, whitelist, "in"))
			Expect(names(matched)).To(ConsistOf("Engineering", "Marketing", "Finance"))
		})

		It("should ignore non-text fields", func() {
			Expect(query.Apply(seed, query.Search(units, whitelist, "900"))).To(BeEmpty())
		})

		It("should place no constraint for a blank term", func() {
			Expect(query.Search(units, whitelist, "  ")).To(BeNil())
		})

		It("should place no constraint when no whitelisted field is searchable", func() {
			p := query.Search(units, []string{"budget", "unknown"}, "finance")
			Expect(p).To(BeNil())
			Expect(query.Apply(seed, p)).To(HaveLen(len(seed)))
		})
	})

	It("should not modify the input collection", func() {
		before := seedUnits()
		_ = query.Apply(seed, query.Contains(byName, "e"))
		Expect(seed).To(Equal(before))
	})
})
