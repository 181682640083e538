package catalog

// MissionType identifies which player action a mission counts.
type MissionType string

// Mission types.
const (
	MissionFeed  MissionType = "feed"
	MissionPet   MissionType = "pet"
	MissionWash  MissionType = "wash"
	MissionPlay  MissionType = "play"
	MissionLevel MissionType = "level"
)

// Mission is a fixed goal with a numeric requirement and a one-time
// coin reward. Progress toward it is tracked per player.
type Mission struct {
	ID          string
	Title       string
	Description string
	Requirement float64
	Reward      int64
	Type        MissionType
}

// Missions are the permanent missions every player works through.
var Missions = []Mission{
	{ID: "m1", Title: "Hungry Panda", Description: "Feed your panda 5 times", Requirement: 5, Reward: 50, Type: MissionFeed},
	{ID: "m2", Title: "Good Friend", Description: "Pet your panda 20 times", Requirement: 20, Reward: 30, Type: MissionPet},
	{ID: "m3", Title: "Squeaky Clean", Description: "Wash your panda 3 times", Requirement: 3, Reward: 40, Type: MissionWash},
	{ID: "m4", Title: "Game Master", Description: "Play with panda 5 times", Requirement: 5, Reward: 60, Type: MissionPlay},
	{ID: "m5", Title: "Growing Up", Description: "Reach Level 2", Requirement: 2, Reward: 100, Type: MissionLevel},
}

// DailyPool is the pool the three daily missions are drawn from.
var DailyPool = []Mission{
	{ID: "d1", Title: "Breakfast Time", Description: "Feed your panda 3 times", Requirement: 3, Reward: 30, Type: MissionFeed},
	{ID: "d2", Title: "Big Appetite", Description: "Feed your panda 8 times", Requirement: 8, Reward: 60, Type: MissionFeed},
	{ID: "d3", Title: "Cuddle Time", Description: "Pet your panda 15 times", Requirement: 15, Reward: 25, Type: MissionPet},
	{ID: "d4", Title: "Bath Day", Description: "Wash your panda 2 times", Requirement: 2, Reward: 35, Type: MissionWash},
	{ID: "d5", Title: "Deep Clean", Description: "Wash your panda 5 times", Requirement: 5, Reward: 55, Type: MissionWash},
	{ID: "d6", Title: "Gamer Panda", Description: "Score 50+ in minigames", Requirement: 50, Reward: 45, Type: MissionPlay},
	{ID: "d7", Title: "Pro Gamer", Description: "Score 200+ in minigames", Requirement: 200, Reward: 80, Type: MissionPlay},
	{ID: "d8", Title: "Petting Master", Description: "Pet your panda 30 times", Requirement: 30, Reward: 40, Type: MissionPet},
	{ID: "d9", Title: "Snack Attack", Description: "Feed panda 10 times", Requirement: 10, Reward: 70, Type: MissionFeed},
	{ID: "d10", Title: "Quick Wash", Description: "Wash your panda once", Requirement: 1, Reward: 20, Type: MissionWash},
	{ID: "d11", Title: "Playtime!", Description: "Play 3 minigames", Requirement: 3, Reward: 40, Type: MissionPlay},
	{ID: "d12", Title: "Score Chaser", Description: "Score 100+ in minigames", Requirement: 100, Reward: 60, Type: MissionPlay},
	{ID: "d13", Title: "Loving Keeper", Description: "Pet panda 50 times", Requirement: 50, Reward: 55, Type: MissionPet},
	{ID: "d14", Title: "Hungry Hippo", Description: "Feed panda 15 times", Requirement: 15, Reward: 80, Type: MissionFeed},
	{ID: "d15", Title: "Spa Day", Description: "Wash your panda 3 times", Requirement: 3, Reward: 45, Type: MissionWash},
}

// MissionByID looks up a mission by ID across the permanent missions
// and the daily pool.
func MissionByID(id string) (Mission, bool) {
	for _, m := range Missions {
		if m.ID == id {
			return m, true
		}
	}
	for _, m := range DailyPool {
		if m.ID == id {
			return m, true
		}
	}
	return Mission{}, false
}
