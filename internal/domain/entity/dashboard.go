package entity

// StudentStats summarizes a student's standing on the dashboard.
type StudentStats struct {
	CoursesCompleted    int `json:"coursesCompleted"`
	CertificatesEarned  int `json:"certificatesEarned"`
	LeaderboardPosition int `json:"leaderboardPosition"`
	AssignmentsPending  int `json:"assignmentsPending"`
}

// Activity is a recent-activity feed item on the student dashboard.
type Activity struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Title     string `json:"title"`
	CreatedAt string `json:"createdAt"`
}

// StudentDashboard is the student home payload.
type StudentDashboard struct {
	EnrolledCourses    []Course     `json:"enrolledCourses"`
	Stats              StudentStats `json:"stats"`
	RecentActivity     []Activity   `json:"recentActivity"`
	RecommendedCourses []Course     `json:"recommendedCourses"`
}

// MentorStats summarizes a mentor's published courses.
type MentorStats struct {
	TotalStudents         int     `json:"totalStudents"`
	TotalRevenue          int     `json:"totalRevenue"`
	CompletionRate        float64 `json:"completionRate"`
	PendingCertifications int     `json:"pendingCertifications"`
}

// MentorDashboard is the mentor home payload.
type MentorDashboard struct {
	Courses []Course    `json:"courses"`
	Stats   MentorStats `json:"stats"`
}
