package payload_test

import (
	"bytes"
	"net/http/httptest"

	"feedbacker/internal/http/payload"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("DecodeValidator", func() {
	var dv payload.DecodeValidator

	decode := func(body string, object any) error {
		req := httptest.NewRequest("POST", "/board/login", bytes.NewBufferString(body))
		return dv.DecodeAndValidateJSONPayload(req, object)
	}

	It("should decode and validate a well formed payload", func() {
		var request payload.AuthRequest
		err := decode(`{"username":"alice","password":"secret-pass"}`, &request)

		Expect(err).NotTo(HaveOccurred())
		Expect(request.Username).To(Equal("alice"))
	})

	It("should reject malformed json", func() {
		var request payload.AuthRequest
		err := decode(`{"username":`, &request)

		Expect(err).To(MatchError(ContainSubstring("decoding json payload")))
	})

	It("should reject unknown fields", func() {
		var request payload.AuthRequest
		err := decode(`{"username":"alice","password":"secret-pass","role":"admin"}`, &request)

		Expect(err).To(MatchError(ContainSubstring("decoding json payload")))
	})

	It("should surface validation failures", func() {
		var request payload.AuthRequest
		err := decode(`{"username":"alice"}`, &request)

		Expect(err).To(MatchError(ContainSubstring("validating payload")))
	})
})
