package scheduler

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TaskAllocationRefresh = "adspend.rotation.refresh"

const TaskImpressionFlush = "routing.impression.flush"

// AllocationRefreshPayload carries no target: the worker refreshes every
// partner with an ad budget on each run.
type AllocationRefreshPayload struct {
	RequestedBy string `json:"requestedBy,omitempty"`
}

// ImpressionFlushPayload names the day whose Redis counters should be folded
// into the daily stats table.
type ImpressionFlushPayload struct {
	Day string `json:"day"` // 2006-01-02
}

func NewAllocationRefreshTask(payload AllocationRefreshPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskAllocationRefresh, data), nil
}

func ParseAllocationRefreshPayload(task *asynq.Task) (AllocationRefreshPayload, error) {
	var payload AllocationRefreshPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return AllocationRefreshPayload{}, err
	}
	return payload, nil
}

func NewImpressionFlushTask(payload ImpressionFlushPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskImpressionFlush, data), nil
}

func ParseImpressionFlushPayload(task *asynq.Task) (ImpressionFlushPayload, error) {
	var payload ImpressionFlushPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return ImpressionFlushPayload{}, err
	}
	return payload, nil
}
