package constants

const (
	// ChallengeDays is the fixed length of a challenge run
	ChallengeDays = 75

	// SchemaVersion is the current persisted-state schema version
	SchemaVersion = 1

	// ChallengeKey is the blob-store key for the serialized challenge
	ChallengeKey = "challenge_data_v1"
	// WeightUnitKey is the blob-store key for the weight-unit preference
	WeightUnitKey = "weight_unit"

	// DateFormat is the date-only format used for day dates (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// PhotoDirName is the directory under the config dir holding progress photos
	PhotoDirName = "photos"

	// WeightUnitLbs and WeightUnitKg are the accepted weight-unit values
	WeightUnitLbs = "lbs"
	WeightUnitKg  = "kg"
	// DefaultWeightUnit is used when no preference has been saved
	DefaultWeightUnit = WeightUnitLbs
)

const (
	// ManifestName is the archive entry holding the backup payload
	ManifestName = "manifest.json"
	// PhotoEntryFormat names embedded photo entries by 1-based day number
	PhotoEntryFormat = "day-%d.jpg"
	// BackupVersion is the backup payload format version
	BackupVersion = 1
)
