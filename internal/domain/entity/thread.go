package entity

// ThreadAuthor is the embedded author reference on a thread.
type ThreadAuthor struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Avatar   string `json:"avatar,omitempty"`
}

// Thread is a short social post with engagement counters and the
// per-viewer liked flag.
type Thread struct {
	ID        string       `json:"id"`
	Author    ThreadAuthor `json:"author"`
	Content   string       `json:"content"`
	Images    []string     `json:"images,omitempty"`
	Likes     int          `json:"likes"`
	Comments  int          `json:"comments"`
	Shares    int          `json:"shares"`
	Liked     bool         `json:"liked"`
	CreatedAt string       `json:"createdAt"`
}

// Profile is the public view of a user with aggregate counters.
type Profile struct {
	ID           string            `json:"id"`
	Username     string            `json:"username"`
	Name         string            `json:"name"`
	Bio          string            `json:"bio,omitempty"`
	Avatar       string            `json:"avatar,omitempty"`
	CoverImage   string            `json:"coverImage,omitempty"`
	Followers    int               `json:"followers"`
	Following    int               `json:"following"`
	Courses      int               `json:"courses"`
	Certificates int               `json:"certificates"`
	Threads      []Thread          `json:"threads,omitempty"`
	Skills       []string          `json:"skills,omitempty"`
	SocialLinks  map[string]string `json:"socialLinks,omitempty"`
}
