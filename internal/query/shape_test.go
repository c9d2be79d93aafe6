package query_test

import (
	"encoding/json"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/hr-records/internal/query"
)

var _ = Describe("Shape", func() {
	var seed []unit

	BeforeEach(func() {
		seed = seedUnits()
	})

	It("should expose exactly the requested fields in requested order", func() {
		records := query.Shape(units, seed[:2], "name,id")
		Expect(records).To(HaveLen(2))
		Expect(records[0].Keys()).To(Equal([]string{"name", "id"}))

		name, ok := records[1].Get("name")
		Expect(ok).To(BeTrue())
		Expect(name).To(Equal("Engineering"))

		_, ok = records[1].Get("code")
		Expect(ok).To(BeFalse())
	})

	It("should use canonical names whatever the requested casing", func() {
		record := query.ShapeOne(units, &seed[0], "NAME,Code asc")
		Expect(record.Keys()).To(Equal([]string{"name", "code"}))
	})

	It("should collapse repeated fields", func() {
		record := query.ShapeOne(units, &seed[0], "name,id,name")
		Expect(record.Keys()).To(Equal([]string{"name", "id"}))
	})

	It("should round-trip every canonical field", func() {
		source := seed[1]
		record := query.ShapeOne(units, &source, "")
		Expect(record.Keys()).To(Equal(units.CanonicalFields()))

		id, _ := record.Get("id")
		Expect(id).To(Equal(source.ID))
		parent, _ := record.Get("parentId")
		Expect(parent).To(Equal(*source.ParentID))
		budget, _ := record.Get("budget")
		Expect(budget).To(Equal(source.Budget))
		founded, _ := record.Get("founded")
		Expect(founded).To(Equal(source.Founded))
		lvl, _ := record.Get("level")
		Expect(lvl).To(Equal("department"))
	})

	It("should read absent optional values as nil", func() {
		record := query.ShapeOne(units, &seed[0], "parentId")
		parent, ok := record.Get("parentId")
		Expect(ok).To(BeTrue())
		Expect(parent).To(BeNil())
	})

	It("should not share state with the source or other records", func() {
		records := query.Shape(units, seed, "name")
		seed[0].Name = "Changed"

		name, _ := records[0].Get("name")
		Expect(name).To(Equal("Human Resources"))
		other, _ := records[1].Get("name")
		Expect(other).To(Equal("Engineering"))
	})

	It("should marshal as an ordered JSON object", func() {
		record := query.ShapeOne(units, &seed[0], "name,parentId,id")
		raw, err := json.Marshal(record)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(raw)).To(Equal(`{"name":"Human Resources","parentId":null,"id":1}`))
	})
})
