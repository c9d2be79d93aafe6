package internal_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/hr-records/internal"
)

var _ = Describe("AppError", func() {
	It("should carry resource-specific not-found messages", func() {
		Expect(internal.ErrWorkerNotFound.Error()).To(Equal("Worker Not Found."))
		Expect(internal.ErrOrgUnitNotFound.StatusCode).To(Equal(http.StatusNotFound))
		Expect(internal.IsNotFound(fmt.Errorf("wrapped: %w", internal.ErrBandNotFound))).To(BeTrue())
		Expect(internal.IsNotFound(errors.New("connection refused"))).To(BeFalse())
	})

	It("should tell cancellation apart from failures", func() {
		Expect(internal.IsCanceled(fmt.Errorf("query: %w", context.Canceled))).To(BeTrue())
		Expect(internal.IsCanceled(context.DeadlineExceeded)).To(BeFalse())
	})

	It("should list one message per invalid field", func() {
		err := internal.NewValidationError("Validation failed", internal.ErrCodeValidationFailed).
			WithDetails(internal.ValidationErrors{Errors: []internal.ValidationError{
				{Field: "name", Message: "name is required"},
				{Field: "email", Message: "email must be a valid email"},
			}})
		Expect(err.Messages()).To(Equal([]string{"name is required", "email must be a valid email"}))
		Expect(err.GetDetailedMessage()).To(Equal("name is required; email must be a valid email"))
	})

	It("should default the actor for audit columns", func() {
		Expect(internal.ActorFromContext(context.Background())).To(Equal(internal.SystemActor))
		ctx := internal.ContextWithActor(context.Background(), "hr-admin")
		Expect(internal.ActorFromContext(ctx)).To(Equal("hr-admin"))
	})
})
