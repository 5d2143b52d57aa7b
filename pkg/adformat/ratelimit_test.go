package adformat_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/lifeinvader-ads/pkg/adformat"
	adformatMocks "github.com/donaldgifford/lifeinvader-ads/pkg/adformat/mocks"
)

func TestRateLimitedBackend_RejectsOverBudget(t *testing.T) {
	t.Parallel()

	mb := adformatMocks.NewMockBackend(t)
	mb.EXPECT().Name().Return("mock").Maybe()
	mb.EXPECT().Generate(mock.Anything, mock.Anything).
		Return(adformat.GenerateResponse{Content: "ok"}, nil).
		Once()

	b := adformat.NewRateLimitedBackend(mb, 0.001, 1)
	assert.Equal(t, "mock", b.Name())

	resp, err := b.Generate(context.Background(), adformat.GenerateRequest{Prompt: "a"})
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Content)

	_, err = b.Generate(context.Background(), adformat.GenerateRequest{Prompt: "b"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, adformat.ErrRateLimited))
}

func TestRateLimitedBackend_Unlimited(t *testing.T) {
	t.Parallel()

	mb := adformatMocks.NewMockBackend(t)
	mb.EXPECT().Generate(mock.Anything, mock.Anything).
		Return(adformat.GenerateResponse{Content: "ok"}, nil).
		Times(5)

	b := adformat.NewRateLimitedBackend(mb, 0, 0)
	for range 5 {
		_, err := b.Generate(context.Background(), adformat.GenerateRequest{})
		require.NoError(t, err)
	}
}
