package model

// MetaInfo describes version of the stored data
type MetaInfo struct {
	Version         string `bson:"version"`
	DatabaseVersion uint   `bson:"databaseVersion"`
}
