package model

// ProfileType is one of the six mutually exclusive esteem profiles.
// Classification uses composite + section scores on the 0-100 scale.
type ProfileType string

const (
	ProfileRooted        ProfileType = "rooted"
	ProfileWavering      ProfileType = "wavering"
	ProfileSelfCritical  ProfileType = "self_critical"
	ProfileGrowing       ProfileType = "growing"
	ProfileQuietObserver ProfileType = "quiet_observer"
	ProfileBalanceSeeker ProfileType = "balance_seeker"
)

// ProfileTheme is the cosmetic label/color pair the rendering layer uses
// for a profile. Owned by configuration, not by scoring logic.
type ProfileTheme struct {
	Profile ProfileType `json:"profile" bson:"profile"`
	Label   string      `json:"label" bson:"label"`
	Color   string      `json:"color" bson:"color"`
}
