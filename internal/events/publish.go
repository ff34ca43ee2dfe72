package events

import "log/slog"

// Publish sends an event and logs, rather than returns, any failure.
// Change notifications are advisory: a dropped event must never fail the
// mutation that produced it.
func Publish(client EventPublisher, event Event) {
	if client == nil {
		return // Silently skip if no client (e.g., in tests or one-shot CLI runs)
	}

	if err := client.SendEvent(event); err != nil {
		slog.Warn("event publish failed",
			"entity", event.Entity,
			"entity_id", event.EntityID,
			"event_type", event.Type,
			"project_id", event.ProjectID,
			"error", err)
	}
}
