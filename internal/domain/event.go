package domain

// SiteEvent is published on the signal channel when a site is created,
// feeding the realtime websocket stream.
type SiteEvent struct {
	Type    string  `json:"type"`
	Feature Feature `json:"feature"`
}

// EventSiteCreated is the event type emitted after a successful site
// creation.
const EventSiteCreated = "site_created"
