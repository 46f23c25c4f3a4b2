package domain

// HotDeal is one row of the forum's hot deal listing.
// Every field is always serialized, with its zero value when the row lacks it.
// Category has its surrounding brackets removed and Time is the display string
// exactly as the board shows it.
type HotDeal struct {
	Category  string `json:"category"`
	Title     string `json:"title"`
	Link      string `json:"link"`
	HasImage  bool   `json:"has_image"`
	Recommend int    `json:"recommend"`
	Replies   int    `json:"replies"`
	Views     int    `json:"views"`
	Time      string `json:"time"`
	Writer    string `json:"writer"`
	MemberID  string `json:"member_id"`
}
