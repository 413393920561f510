// Package keys derives stable identifiers for event sub-entities.
//
// Every function is pure: the same input always yields the same key and nothing
// touches storage. Resubmitting identical data therefore updates the record it
// created the first time instead of duplicating it.
//
//	MatchKey("2014casj", "qm", 1, 12)  // 2014casj_qm12
//	MatchKey("2014casj", "sf", 2, 1)   // 2014casj_sf2m1
//	AwardKey("2014casj", "Regional Winners") // 2014casj_1
//	EventTeamKey("2014casj", "254")    // 2014casj_frc254
package keys
