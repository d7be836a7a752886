package analytics_test

import (
	"testing"

	"go-agency-backend/pkg/analytics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataLayerRecordsEvents(t *testing.T) {
	dl := analytics.NewDataLayer()

	analytics.TrackFormSubmission(dl, "contact_form", true)
	analytics.TrackLead(dl, "contact_form")
	analytics.TrackFormSubmission(dl, "contact_form", false)

	events := dl.Events()
	require.Len(t, events, 3)
	assert.Equal(t, "form_submission_success", events[0]["event"])
	assert.Equal(t, "contact_form", events[0]["form_name"])
	assert.Equal(t, "lead_submitted", events[1]["event"])
	assert.Equal(t, "contact_form", events[1]["lead_source"])
	assert.Equal(t, "form_submission_error", events[2]["event"])
}

func TestTrackEventIgnoresNilTracker(t *testing.T) {
	assert.NotPanics(t, func() {
		analytics.TrackEvent(nil, analytics.Event{"event": "cta_click"})
	})
}

type explodingTracker struct{}

func (explodingTracker) Track(analytics.Event) {
	panic("tag manager offline")
}

func TestTrackEventSwallowsPanics(t *testing.T) {
	assert.NotPanics(t, func() {
		analytics.TrackScrollDepth(explodingTracker{}, 75)
	})
}

func TestEventCatalogNames(t *testing.T) {
	dl := analytics.NewDataLayer()

	analytics.TrackCTAClick(dl, "hero_cta", "hero", "#contacto")
	analytics.TrackSectionView(dl, "services")
	analytics.TrackScrollDepth(dl, 50)
	analytics.TrackPillarInteraction(dl, "astrapa")
	analytics.TrackExternalLink(dl, "https://example.com", "Example")

	events := dl.Events()
	require.Len(t, events, 5)
	assert.Equal(t, "cta_click", events[0]["event"])
	assert.Equal(t, "section_view", events[1]["event"])
	assert.Equal(t, "scroll_depth", events[2]["event"])
	assert.Equal(t, 50, events[2]["scroll_percentage"])
	assert.Equal(t, "pillar_interaction", events[3]["event"])
	assert.Equal(t, "external_link_click", events[4]["event"])
}
