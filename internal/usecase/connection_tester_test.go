//go:build unit

package usecase_test

import (
	"context"
	"testing"

	"apprien-go-sdk/internal/usecase"
	pricingmock "apprien-go-sdk/tests/mock/pricing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestConnectionTester(t *testing.T) {
	testCases := []struct {
		name   string
		status bool
		token  bool
		want   usecase.ConnectionReport
		ok     bool
	}{
		{name: "all good", status: true, token: true, want: usecase.ConnectionReport{ServiceOnline: true, TokenValid: true}, ok: true},
		{name: "bad token", status: true, token: false, want: usecase.ConnectionReport{ServiceOnline: true}},
		{name: "offline", status: false, token: false, want: usecase.ConnectionReport{}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			backend := pricingmock.NewMockBackend(ctrl)
			backend.EXPECT().CheckServiceStatus(gomock.Any()).Return(tc.status)
			backend.EXPECT().CheckTokenValidity(gomock.Any()).Return(tc.token)

			report := usecase.NewConnectionTester(backend, discardLogger()).Test(context.Background())

			assert.Equal(t, tc.want, report)
			assert.Equal(t, tc.ok, report.OK())
		})
	}
}
