package service

const (
	// DefaultWorkers bounds parallel result computation when none is configured
	DefaultWorkers = 4

	// RecentPlayersLimit is how many players the squad screen lists as recently updated
	RecentPlayersLimit = 5
)
