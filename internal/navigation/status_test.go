package navigation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNaviStatusString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status NaviStatus
		want   string
	}{
		{StatusNormal, "NORMAL"},
		{StatusLost, "LOST"},
		{StatusObstacleAvoid, "OBSTACLE_AVOID"},
		{StatusStop, "STOP"},
		{StatusStandby, "STANDBY"},
		{StatusManual, "MANUAL"},
		{StatusLostRecovery, "LOST_RECOVERY"},
		{NaviStatus(7), "unknown"},
		{NaviStatus(-1), "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.status.String())
		assert.Equal(t, tt.want != "unknown", tt.status.IsValid(), "IsValid(%d)", int(tt.status))
	}
}

func TestNaviStatusJSON(t *testing.T) {
	t.Parallel()

	payload := struct {
		Status NaviStatus `json:"status"`
	}{Status: StatusObstacleAvoid}

	data, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"OBSTACLE_AVOID"}`, string(data))
}
