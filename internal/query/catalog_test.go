package query_test

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/hr-records/internal/query"
)

var _ = Describe("Catalog", func() {
	Describe("CanonicalFields", func() {
		It("should list fields in declaration order", func() {
			Expect(units.CanonicalFields()).To(Equal([]string{
				"id", "name", "code", "parentId", "budget", "founded", "level",
			}))
		})
	})

	Describe("ValidateFields", func() {
		It("should keep matching tokens in the caller's order", func() {
			Expect(units.ValidateFields("name,id")).To(Equal("name,id"))
		})

		It("should match case-insensitively", func() {
			Expect(units.ValidateFields("NAME, ParentID")).To(Equal("NAME,ParentID"))
		})

		It("should drop unknown tokens silently", func() {
			Expect(units.ValidateFields("name,salary,,id,password")).To(Equal("name,id"))
		})

		It("should pass an order direction through once the field matches", func() {
			Expect(units.ValidateFields("name desc, bogus asc, id sideways")).To(Equal("name desc,id sideways"))
		})

		It("should return empty for empty or blank input", func() {
			Expect(units.ValidateFields("")).To(BeEmpty())
			Expect(units.ValidateFields("   ")).To(BeEmpty())
		})

		It("should return empty when nothing is valid", func() {
			Expect(units.ValidateFields("salary,password")).To(BeEmpty())
		})

		DescribeTable("should always return a subsequence of the candidates restricted to catalog fields",
			func(candidates string) {
				result := units.ValidateFields(candidates)
				if result == "" {
					return
				}

				input := make([]string, 0)
				for _, token := range strings.Split(candidates, ",") {
					input = append(input, strings.TrimSpace(token))
				}

				cursor := 0
				for _, token := range strings.Split(result, ",") {
					name := strings.Fields(token)[0]
					_, known := units.Field(name)
					Expect(known).To(BeTrue())

					for cursor < len(input) && input[cursor] != token {
						cursor++
					}
					Expect(cursor).To(BeNumerically("<", len(input)), "token %q out of order", token)
					cursor++
				}
			},
			Entry("mixed", "code,foo,name,bar,id"),
			Entry("reversed", "level,founded,budget,parentId,code,name,id"),
			Entry("duplicates", "name,name,x,name"),
			Entry("with directions", "budget desc,foo asc,id"),
			Entry("noise", ",, ,  x ,"),
		)
	})

	Describe("ResolveFields", func() {
		It("should fall back to canonical fields when nothing is selected", func() {
			Expect(units.ResolveFields("")).To(Equal(strings.Join(units.CanonicalFields(), ",")))
			Expect(units.ResolveFields("nope")).To(Equal(strings.Join(units.CanonicalFields(), ",")))
		})

		It("should keep a valid selection", func() {
			Expect(units.ResolveFields("code")).To(Equal("code"))
		})
	})

	It("should panic on duplicate field names", func() {
		Expect(func() {
			query.NewCatalog(
				query.String("name", func(u *unit) string { return u.Name }),
				query.String("Name", func(u *unit) string { return u.Code }),
			)
		}).To(Panic())
	})
})
