package request_models

// Create payloads. Timestamps arrive as browser datetime-local strings and
// are parsed before reaching the data layer.

type TrackEliminationRequest struct {
	Timestamp string   `form:"timestamp" json:"timestamp"`
	Type      string   `form:"type" json:"type"`
	Weight    *float64 `form:"weight" json:"weight"`
	Location  *string  `form:"location" json:"location"`
	Notes     *string  `form:"notes" json:"notes"`

	// Ignored on insert: eliminations are always recorded as successful.
	Success *bool `form:"success" json:"success"`
}

type TrackFeedingRequest struct {
	StartTime string   `form:"timestamp" json:"startTime"`
	EndTime   *string  `form:"endTime" json:"endTime"`
	Type      string   `form:"type" json:"type"`
	Side      *string  `form:"side" json:"side"`
	Amount    *float64 `form:"amount" json:"amount"`
	Food      *string  `form:"food" json:"food"`
	Notes     *string  `form:"notes" json:"notes"`
}

type TrackSleepRequest struct {
	StartTime       string  `form:"timestamp" json:"startTime"`
	EndTime         *string `form:"endTime" json:"endTime"`
	Type            string  `form:"type" json:"type"`
	How             *string `form:"how" json:"how"`
	WhereFellAsleep *string `form:"whereFellAsleep" json:"whereFellAsleep"`
	WhereSlept      *string `form:"whereSlept" json:"whereSlept"`
	Quality         *int    `form:"quality" json:"quality"`
	Notes           *string `form:"notes" json:"notes"`
}

type TrackMilestoneRequest struct {
	Date        string  `form:"timestamp" json:"date"`
	Category    string  `form:"category" json:"category"`
	Title       string  `form:"title" json:"title"`
	Description *string `form:"description" json:"description"`
	Notes       *string `form:"notes" json:"notes"`
}

type TrackMeasurementRequest struct {
	Date     string   `form:"timestamp" json:"date"`
	Weight   *float64 `form:"weight" json:"weight"`
	Height   *float64 `form:"height" json:"height"`
	HeadCirc *float64 `form:"headCirc" json:"headCirc"`
	Notes    *string  `form:"notes" json:"notes"`
}

// Edit payloads: nil leaves a field untouched.

type EditEliminationRequest struct {
	Timestamp *string  `form:"timestamp" json:"timestamp"`
	Type      *string  `form:"type" json:"type"`
	Weight    *float64 `form:"weight" json:"weight"`
	Location  *string  `form:"location" json:"location"`
	Notes     *string  `form:"notes" json:"notes"`
}

type EditFeedingRequest struct {
	StartTime *string  `form:"timestamp" json:"startTime"`
	EndTime   *string  `form:"endTime" json:"endTime"`
	Type      *string  `form:"type" json:"type"`
	Side      *string  `form:"side" json:"side"`
	Amount    *float64 `form:"amount" json:"amount"`
	Food      *string  `form:"food" json:"food"`
	Notes     *string  `form:"notes" json:"notes"`
}

type EditSleepRequest struct {
	StartTime       *string `form:"timestamp" json:"startTime"`
	EndTime         *string `form:"endTime" json:"endTime"`
	Type            *string `form:"type" json:"type"`
	How             *string `form:"how" json:"how"`
	WhereFellAsleep *string `form:"whereFellAsleep" json:"whereFellAsleep"`
	WhereSlept      *string `form:"whereSlept" json:"whereSlept"`
	Quality         *int    `form:"quality" json:"quality"`
	Notes           *string `form:"notes" json:"notes"`
}

type EditMilestoneRequest struct {
	Date        *string `form:"timestamp" json:"date"`
	Category    *string `form:"category" json:"category"`
	Title       *string `form:"title" json:"title"`
	Description *string `form:"description" json:"description"`
	Notes       *string `form:"notes" json:"notes"`
}

type EditMeasurementRequest struct {
	Date     *string  `form:"timestamp" json:"date"`
	Weight   *float64 `form:"weight" json:"weight"`
	Height   *float64 `form:"height" json:"height"`
	HeadCirc *float64 `form:"headCirc" json:"headCirc"`
	Notes    *string  `form:"notes" json:"notes"`
}

type EditPhotoRequest struct {
	Caption   *string `form:"caption" json:"caption"`
	Timestamp *string `form:"timestamp" json:"timestamp"`
}
