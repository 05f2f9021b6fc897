package planner

type CreateCourseRequest struct {
	Name      string `json:"name" validate:"required"`
	Day       string `json:"day"`
	StartTime string `json:"startTime" validate:"omitempty,datetime=15:04"`
	EndTime   string `json:"endTime" validate:"omitempty,datetime=15:04"`
	Room      string `json:"room"`
	Note      string `json:"note"`
}

type CreateTaskRequest struct {
	CourseID string `json:"course_id" validate:"required"`
	Text     string `json:"text" validate:"required"`
	Deadline string `json:"deadline" validate:"required"`
	Priority string `json:"priority" validate:"omitempty,oneof=low medium high"`
	Note     string `json:"note"`
}

type ProgressResponse struct {
	Completed int     `json:"completed"`
	Total     int     `json:"total"`
	Percent   float64 `json:"percent"`
}

type TaskResponse struct {
	ID               string `json:"id"`
	Text             string `json:"text"`
	Deadline         string `json:"deadline"`
	Priority         string `json:"priority"`
	Note             string `json:"note"`
	Done             bool   `json:"done"`
	CreatedAt        string `json:"created_at"`
	DaysUntil        int    `json:"days_until"`
	Urgent           bool   `json:"urgent"`
	RelativeDeadline string `json:"relative_deadline"`
}

type CourseResponse struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Day           string           `json:"day,omitempty"`
	DayName       string           `json:"day_name,omitempty"`
	StartTime     string           `json:"start_time,omitempty"`
	EndTime       string           `json:"end_time,omitempty"`
	Room          string           `json:"room,omitempty"`
	Note          string           `json:"note"`
	Progress      ProgressResponse `json:"progress"`
	UpcomingCount int              `json:"upcoming_count"`
	Tasks         []TaskResponse   `json:"tasks"`
}

type TaskDetailResponse struct {
	CourseID   string       `json:"course_id"`
	CourseName string       `json:"course_name"`
	Task       TaskResponse `json:"task"`
	DeadlineAt string       `json:"deadline_at"`
}

type DeadlineEntry struct {
	CourseID   string       `json:"course_id"`
	CourseName string       `json:"course_name"`
	Task       TaskResponse `json:"task"`
}

type ScheduleCourseResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Room      string `json:"room,omitempty"`
}

type ScheduleDayResponse struct {
	Day     string                   `json:"day"`
	DayName string                   `json:"day_name"`
	Date    string                   `json:"date"`
	IsToday bool                     `json:"is_today"`
	Courses []ScheduleCourseResponse `json:"courses"`
}

type WeeklyScheduleResponse struct {
	WeekOffset int                   `json:"week_offset"`
	WeekStart  string                `json:"week_start"`
	WeekEnd    string                `json:"week_end"`
	Label      string                `json:"label"`
	Days       []ScheduleDayResponse `json:"days"`
}
