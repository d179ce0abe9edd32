package utils

import (
	"testing"
	"time"
)

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  bool
	}{
		{
			name:  "valid email",
			email: "parent@example.com",
			want:  true,
		},
		{
			name:  "valid email with plus tag",
			email: "parent+baby@example.com",
			want:  true,
		},
		{
			name:  "surrounding whitespace is tolerated",
			email: "  parent@example.com  ",
			want:  true,
		},
		{
			name:  "missing at sign",
			email: "parentexample.com",
			want:  false,
		},
		{
			name:  "missing domain",
			email: "parent@",
			want:  false,
		},
		{
			name:  "missing tld",
			email: "parent@example",
			want:  false,
		},
		{
			name:  "empty string",
			email: "",
			want:  false,
		},
		{
			name:  "space inside address",
			email: "pa rent@example.com",
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidEmail(tt.email); got != tt.want {
				t.Errorf("IsValidEmail(%q) = %v, want %v", tt.email, got, tt.want)
			}
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	got := NormalizeEmail("  Parent@Example.COM ")
	if got != "parent@example.com" {
		t.Errorf("NormalizeEmail() = %q, want %q", got, "parent@example.com")
	}
}

func TestParseDateOfBirth(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{
			name:  "browser date field",
			value: "2024-03-15",
		},
		{
			name:  "rfc3339 timestamp",
			value: "2024-03-15T10:30:00Z",
		},
		{
			name:    "empty value",
			value:   "",
			wantErr: true,
		},
		{
			name:    "garbage",
			value:   "not-a-date",
			wantErr: true,
		},
		{
			name:    "future date rejected",
			value:   time.Now().AddDate(1, 0, 0).Format("2006-01-02"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDateOfBirth(tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseDateOfBirth(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
		})
	}
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "datetime-local form value",
			value: "2024-03-15T14:30",
			want:  time.Date(2024, 3, 15, 14, 30, 0, 0, time.UTC),
		},
		{
			name:  "rfc3339",
			value: "2024-03-15T14:30:00Z",
			want:  time.Date(2024, 3, 15, 14, 30, 0, 0, time.UTC),
		},
		{
			name:  "plain date",
			value: "2024-03-15",
			want:  time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "empty",
			value:   "",
			wantErr: true,
		},
		{
			name:    "unparseable",
			value:   "yesterday",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimestamp(tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseTimestamp(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
			if !tt.wantErr && !got.Equal(tt.want) {
				t.Errorf("ParseTimestamp(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}
