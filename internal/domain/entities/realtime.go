package entities

// Events published to rooms when domain state changes
const (
	EventWorkerLocationUpdate = "worker_location_update"
	EventNewJobBroadcast      = "new_job_broadcast"
	EventJobStatus            = "job_status"
)

// LocationsRoom receives every worker location update.
const LocationsRoom = "locations"

func WorkerRoom(workerID string) string { return "worker-" + workerID }
func UserRoom(userID string) string     { return "user-" + userID }

// JobStatusEvent is pushed to the booking user when an order moves.
type JobStatusEvent struct {
	OrderID  string      `json:"orderId"`
	WorkerID string      `json:"workerId"`
	Status   OrderStatus `json:"status"`
}
