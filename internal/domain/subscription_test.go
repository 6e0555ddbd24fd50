package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SwapPortal/pkg/ptr"
)

func TestSubscriptionInfo_IsUsable(t *testing.T) {
	tests := []struct {
		name string
		sub  SubscriptionInfo
		want bool
	}{
		{
			name: "limit reached",
			sub:  SubscriptionInfo{IsActive: true, SwapsLimit: ptr.Ptr(5), CurrentMonthSwapCount: 5},
			want: false,
		},
		{
			name: "one swap left",
			sub:  SubscriptionInfo{IsActive: true, SwapsLimit: ptr.Ptr(5), CurrentMonthSwapCount: 4},
			want: true,
		},
		{
			name: "unlimited ignores count",
			sub:  SubscriptionInfo{IsActive: true, CurrentMonthSwapCount: 1000},
			want: true,
		},
		{
			name: "inactive",
			sub:  SubscriptionInfo{IsActive: false},
			want: false,
		},
		{
			name: "blocked",
			sub:  SubscriptionInfo{IsActive: true, IsBlocked: true},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.sub.IsUsable())
		})
	}
}

func TestFindUsableSubscription(t *testing.T) {
	subs := []SubscriptionInfo{
		{ID: "s1", VehicleID: "v1", IsActive: true, SwapsLimit: ptr.Ptr(2), CurrentMonthSwapCount: 2},
		{ID: "s2", VehicleID: "v2", IsActive: true},
		{ID: "s3", VehicleID: "v1", IsActive: true, SwapsLimit: ptr.Ptr(10), CurrentMonthSwapCount: 3},
	}

	got := FindUsableSubscription(subs, "v1")
	require.NotNil(t, got)
	assert.Equal(t, "s3", got.ID)
	assert.Equal(t, 7, *got.RemainingSwaps())

	assert.Nil(t, FindUsableSubscription(subs, "v9"))
}
