package overview

type QuickStatsResponse struct {
	CourseCount int     `json:"course_count"`
	TaskRatio   string  `json:"task_ratio"`
	Balance     float64 `json:"balance"`
}

type StatsResponse struct {
	TotalCourses      int     `json:"total_courses"`
	TotalTasks        int     `json:"total_tasks"`
	CompletedTasks    int     `json:"completed_tasks"`
	UpcomingDeadlines int     `json:"upcoming_deadlines"`
	Balance           float64 `json:"balance"`
	TransactionCount  int     `json:"transaction_count"`
}
