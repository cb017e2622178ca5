package enums

// SimulationStatus tracks an AI photo simulation request:
// PENDING -> UPLOADING -> PROCESSING -> COMPLETED/FAILED.
type SimulationStatus string

const (
	SimulationStatusPending    SimulationStatus = "PENDING"
	SimulationStatusUploading  SimulationStatus = "UPLOADING"
	SimulationStatusProcessing SimulationStatus = "PROCESSING"
	SimulationStatusCompleted  SimulationStatus = "COMPLETED"
	SimulationStatusFailed     SimulationStatus = "FAILED"
)

func (s SimulationStatus) IsValid() bool {
	switch s {
	case SimulationStatusPending, SimulationStatusUploading, SimulationStatusProcessing,
		SimulationStatusCompleted, SimulationStatusFailed:
		return true
	}
	return false
}
