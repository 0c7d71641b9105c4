/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package operations_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/xxzx6uzm3/asymmetric-ciphers/internal/operations"
	"github.com/xxzx6uzm3/asymmetric-ciphers/internal/operations/fakes"
)

var _ = Describe("SpecHandler", func() {
	var (
		fakeLogging *fakes.Logging
		fakeLogger  *fakes.Logger
		handler     *operations.SpecHandler
	)

	BeforeEach(func() {
		fakeLogging = &fakes.Logging{}
		fakeLogger = &fakes.Logger{}
		handler = &operations.SpecHandler{
			Logging: fakeLogging,
			Logger:  fakeLogger,
		}
	})

	It("responds with the current logging spec", func() {
		fakeLogging.SpecReturns("warn:rsa.keygen=debug")
		req := httptest.NewRequest(http.MethodGet, "/logspec", nil)
		resp := httptest.NewRecorder()

		handler.ServeHTTP(resp, req)

		Expect(fakeLogging.SpecCallCount()).To(Equal(1))
		Expect(resp.Result().StatusCode).To(Equal(http.StatusOK))
		Expect(resp.Result().Header.Get("Content-Type")).To(Equal("application/json"))
		Expect(resp.Body).To(MatchJSON(`{"spec": "warn:rsa.keygen=debug"}`))
	})

	It("sets the current logging spec", func() {
		req := httptest.NewRequest(http.MethodPut, "/logspec", strings.NewReader(`{"spec": "debug"}`))
		resp := httptest.NewRecorder()

		handler.ServeHTTP(resp, req)

		Expect(fakeLogging.ActivateSpecCallCount()).To(Equal(1))
		Expect(fakeLogging.ActivateSpecArgsForCall(0)).To(Equal("debug"))
		Expect(resp.Result().StatusCode).To(Equal(http.StatusNoContent))
	})

	Context("when the update spec payload cannot be decoded", func() {
		It("responds with an error payload", func() {
			req := httptest.NewRequest(http.MethodPut, "/logspec", strings.NewReader(`goo`))
			resp := httptest.NewRecorder()

			handler.ServeHTTP(resp, req)

			Expect(fakeLogging.ActivateSpecCallCount()).To(Equal(0))
			Expect(resp.Result().StatusCode).To(Equal(http.StatusBadRequest))
			Expect(resp.Body).To(MatchJSON(`{"error": "invalid character 'g' looking for beginning of value"}`))
		})
	})

	Context("when activating the spec fails", func() {
		BeforeEach(func() {
			fakeLogging.ActivateSpecReturns(errors.New("ewww; that's not right!"))
		})

		It("responds with an error payload", func() {
			req := httptest.NewRequest(http.MethodPut, "/logspec", strings.NewReader(`{}`))
			resp := httptest.NewRecorder()

			handler.ServeHTTP(resp, req)

			Expect(resp.Result().StatusCode).To(Equal(http.StatusBadRequest))
			Expect(resp.Body).To(MatchJSON(`{"error": "ewww; that's not right!"}`))
		})
	})

	Context("when an unsupported method is used", func() {
		It("responds with an error", func() {
			req := httptest.NewRequest(http.MethodDelete, "/logspec", nil)
			resp := httptest.NewRecorder()

			handler.ServeHTTP(resp, req)

			Expect(resp.Result().StatusCode).To(Equal(http.StatusBadRequest))
			Expect(resp.Body).To(MatchJSON(`{"error": "invalid request method: DELETE"}`))
		})
	})
})
