package helpers

import (
	"testing"
)

func TestParseCheckinsBareArray(t *testing.T) {
	payload := []byte(`[
		{"venue": {"id": "v1", "name": "Blue Bottle"}, "createdAt": 1735725600, "shout": "hi"},
		{"createdAt": 1735812000}
	]`)

	checkins, err := ParseCheckins(payload)
	if err != nil {
		t.Fatalf("ParseCheckins error: %v", err)
	}
	if len(checkins) != 2 {
		t.Fatalf("parsed %d check-ins, want 2", len(checkins))
	}
	if checkins[0].Venue == nil || checkins[0].Venue.Name != "Blue Bottle" {
		t.Errorf("venue = %+v, want Blue Bottle", checkins[0].Venue)
	}
	if checkins[0].Shout != "hi" {
		t.Errorf("shout = %q, want hi", checkins[0].Shout)
	}
	// Absent fields stay zero-valued.
	if checkins[1].Venue != nil || checkins[1].Photos != nil || len(checkins[1].With) != 0 {
		t.Errorf("absent fields not zero: %+v", checkins[1])
	}
}

func TestParseCheckinsEnvelope(t *testing.T) {
	payload := []byte(`{
		"response": {
			"checkins": {
				"count": 1,
				"items": [
					{
						"venue": {
							"id": "v1",
							"name": "Louvre",
							"location": {"city": "Paris", "country": "France", "lat": 48.8606, "lng": 2.3376},
							"categories": [{"name": "Museum"}]
						},
						"createdAt": 1735725600,
						"with": [{"firstName": "John", "lastName": "Smith"}],
						"photos": {"count": 1, "items": [{"id": "p1"}]}
					}
				]
			}
		}
	}`)

	checkins, err := ParseCheckins(payload)
	if err != nil {
		t.Fatalf("ParseCheckins error: %v", err)
	}
	if len(checkins) != 1 {
		t.Fatalf("parsed %d check-ins, want 1", len(checkins))
	}

	c := checkins[0]
	if c.Venue.Location.City != "Paris" {
		t.Errorf("city = %q, want Paris", c.Venue.Location.City)
	}
	if len(c.Venue.Categories) != 1 || c.Venue.Categories[0].Name != "Museum" {
		t.Errorf("categories = %+v", c.Venue.Categories)
	}
	if len(c.With) != 1 || c.With[0].FirstName != "John" {
		t.Errorf("with = %+v", c.With)
	}
	if c.Photos == nil || len(c.Photos.Items) != 1 {
		t.Errorf("photos = %+v", c.Photos)
	}
}

func TestParseCheckinsEmptyPayload(t *testing.T) {
	for _, payload := range [][]byte{nil, []byte(""), []byte("  \n ")} {
		checkins, err := ParseCheckins(payload)
		if err != nil {
			t.Errorf("ParseCheckins(%q) error: %v", payload, err)
		}
		if len(checkins) != 0 {
			t.Errorf("ParseCheckins(%q) = %d records, want 0", payload, len(checkins))
		}
	}
}

func TestParseCheckinsEmptyArray(t *testing.T) {
	checkins, err := ParseCheckins([]byte("[]"))
	if err != nil {
		t.Fatalf("ParseCheckins error: %v", err)
	}
	if len(checkins) != 0 {
		t.Errorf("parsed %d check-ins, want 0", len(checkins))
	}
}

func TestParseCheckinsMalformed(t *testing.T) {
	if _, err := ParseCheckins([]byte("[{")); err == nil {
		t.Error("expected error for truncated array")
	}
	if _, err := ParseCheckins([]byte("not json")); err == nil {
		t.Error("expected error for garbage input")
	}
}
