package analytics

// Event catalog for the marketing site. Each helper mirrors one tag-manager
// event so names and payload keys stay consistent across the codebase.

// TrackFormSubmission records a form submission attempt outcome.
func TrackFormSubmission(t Tracker, formName string, success bool) {
	name := "form_submission_error"
	if success {
		name = "form_submission_success"
	}
	TrackEvent(t, Event{
		"event":     name,
		"form_name": formName,
	})
}

// TrackLead records lead generation (successful contact form).
func TrackLead(t Tracker, source string) {
	TrackEvent(t, Event{
		"event":       "lead_submitted",
		"lead_source": source,
	})
}

// TrackCTAClick records a call-to-action click.
func TrackCTAClick(t Tracker, label, location, destination string) {
	TrackEvent(t, Event{
		"event":           "cta_click",
		"cta_label":       label,
		"cta_location":    location,
		"cta_destination": destination,
	})
}

// TrackSectionView records a section scrolled into view.
func TrackSectionView(t Tracker, sectionName string) {
	TrackEvent(t, Event{
		"event":        "section_view",
		"section_name": sectionName,
	})
}

// TrackScrollDepth records a scroll depth marker (25, 50, 75, 100).
func TrackScrollDepth(t Tracker, percentage int) {
	TrackEvent(t, Event{
		"event":             "scroll_depth",
		"scroll_percentage": percentage,
	})
}

// TrackPillarInteraction records a service pillar selection.
func TrackPillarInteraction(t Tracker, pillarName string) {
	TrackEvent(t, Event{
		"event":       "pillar_interaction",
		"pillar_name": pillarName,
	})
}

// TrackExternalLink records an outbound link click.
func TrackExternalLink(t Tracker, url, linkText string) {
	TrackEvent(t, Event{
		"event":     "external_link_click",
		"link_url":  url,
		"link_text": linkText,
	})
}
