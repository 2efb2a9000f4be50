package models

// Post is a blog entry. Date is kept as a free-form display string rather than
// a timestamp so authors can write "12 Feb 2019" style dates.
type Post struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Date    string `json:"date"`
	Tags    string `json:"tags"`
	Desc    string `json:"desc"`
	Content string `json:"content"`
}

// Work is a single portfolio item.
type Work struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Year     string `json:"year"`
	Category string `json:"category"`
	Desc     string `json:"desc"`
	Image    string `json:"image"`
}

// Roadmap is a named learning plan made of ordered stages.
type Roadmap struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Stage is a phase within a roadmap. Ord defines its position among siblings;
// values need not be contiguous, ties fall back to id order.
type Stage struct {
	ID          int64  `json:"id"`
	RoadmapID   int64  `json:"roadmap_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Ord         int64  `json:"order"`
}

// Task is an atomic completable unit within a stage.
type Task struct {
	ID          int64  `json:"id"`
	StageID     int64  `json:"stage_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	IsDone      bool   `json:"is_done"`
	Ord         int64  `json:"order"`
}

// StageView pairs a stage with its tasks and computed progress for rendering.
type StageView struct {
	Stage    Stage  `json:"stage"`
	Tasks    []Task `json:"tasks"`
	Progress int    `json:"progress"`
}

// RoadmapView pairs a roadmap with its stages and aggregate progress.
type RoadmapView struct {
	Roadmap  Roadmap     `json:"roadmap"`
	Stages   []StageView `json:"stages"`
	Progress int         `json:"progress"`
}

// Counts holds per-entity totals for the admin dashboard.
type Counts struct {
	Posts    int64 `json:"posts"`
	Works    int64 `json:"works"`
	Roadmaps int64 `json:"roadmaps"`
	Stages   int64 `json:"stages"`
	Tasks    int64 `json:"tasks"`
}
