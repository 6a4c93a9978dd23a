package service

// Scenario event types pushed to dashboards
const (
	EventScenarioCreated   = "scenario_created"
	EventScenarioUpdated   = "scenario_updated"
	EventScenarioSimulated = "scenario_simulated"
	EventScenarioDeleted   = "scenario_deleted"
	EventUsersSynced       = "users_synced"
)

// Broadcaster interface for WebSocket broadcasting (avoids import cycle)
type Broadcaster interface {
	BroadcastToDashboards(msgType string, payload interface{})
}
