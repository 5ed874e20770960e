package types

// ArtistStatus is whether an artist is living or deceased.
type ArtistStatus string

const (
	ArtistLiving   ArtistStatus = "living"
	ArtistDeceased ArtistStatus = "deceased"
)

// Award is a recognition received by an artist.
type Award struct {
	Name     string `json:"name" yaml:"name"`
	Year     int    `json:"year" yaml:"year"`
	Category string `json:"category,omitempty" yaml:"category,omitempty"`
}

// Artist is a performer associated with a region.
type Artist struct {
	ID                  string       `json:"id" yaml:"id"`
	Name                string       `json:"name" yaml:"name"`
	NameLocal           string       `json:"nameLocal,omitempty" yaml:"name_local,omitempty"` // native script
	BirthYear           int          `json:"birthYear,omitempty" yaml:"birth_year,omitempty"`
	DeathYear           int          `json:"deathYear,omitempty" yaml:"death_year,omitempty"`
	State               string       `json:"state" yaml:"state"`
	Community           string       `json:"community,omitempty" yaml:"community,omitempty"` // e.g., "Manganiyar"
	Gharana             string       `json:"gharana,omitempty" yaml:"gharana,omitempty"`
	Genres              []string     `json:"genres,omitempty" yaml:"genres,omitempty"`
	Instruments         []string     `json:"instruments,omitempty" yaml:"instruments,omitempty"`
	Languages           []string     `json:"languages,omitempty" yaml:"languages,omitempty"`
	Awards              []Award      `json:"awards,omitempty" yaml:"awards,omitempty"`
	Biography           string       `json:"biography,omitempty" yaml:"biography,omitempty"`
	NotableWorks        []string     `json:"notableWorks,omitempty" yaml:"notable_works,omitempty"`
	Status              ArtistStatus `json:"status" yaml:"status"`
	HereditaryTradition bool         `json:"hereditaryTradition" yaml:"hereditary_tradition"`
	ActiveYears         string       `json:"activeYears,omitempty" yaml:"active_years,omitempty"` // e.g., "1970s-present"
	RelatedArtists      []string     `json:"relatedArtists,omitempty" yaml:"related_artists,omitempty"`
	RegionID            string       `json:"regionId,omitempty" yaml:"region_id,omitempty"`
}
