// Command codementor is a terminal driver for the CodeMentor client:
// it wires the application context and exposes the screen workflows as
// subcommands.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/codementorhq/codementor-go/config"
	"github.com/codementorhq/codementor-go/internal/application"
	"github.com/codementorhq/codementor-go/internal/container"
	"github.com/codementorhq/codementor-go/internal/domain/entity"
)

func main() {
	_ = godotenv.Load() // load .env if present

	cfg := config.Load()
	app, err := container.New(cfg, container.Options{})
	if err != nil {
		log.Fatalf("failed to build application context: %v", err)
	}

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	ctx := context.Background()
	if err := run(ctx, app, os.Args[1], os.Args[2:]); err != nil {
		app.Logger.WithError(err).Error("command failed")
		os.Exit(1)
	}
}

func run(ctx context.Context, app *container.App, cmd string, args []string) error {
	switch cmd {
	case "whoami":
		user := app.Auth.User()
		if user == nil {
			fmt.Println("not logged in")
			return nil
		}
		fmt.Printf("%s (@%s) role=%s\n", user.Name, user.Username, user.Role)
		return nil

	case "select-role":
		if len(args) != 1 {
			return fmt.Errorf("usage: select-role student|mentor")
		}
		return application.NewOnboarding(app).SelectRole(entity.Role(args[0]))

	case "login":
		fs := flag.NewFlagSet("login", flag.ExitOnError)
		code := fs.String("code", "", "authorization code from the OAuth provider")
		_ = fs.Parse(args)
		return application.NewOnboarding(app).HandleCallback(ctx, *code, "")

	case "complete-profile":
		fs := flag.NewFlagSet("complete-profile", flag.ExitOnError)
		username := fs.String("username", "", "unique handle")
		name := fs.String("name", "", "display name")
		bio := fs.String("bio", "", "short bio")
		_ = fs.Parse(args)
		form := application.ProfileForm{Username: *username, Name: *name, Bio: *bio}
		return application.NewOnboarding(app).CompleteProfile(ctx, form, nil, "")

	case "courses":
		fs := flag.NewFlagSet("courses", flag.ExitOnError)
		category := fs.String("category", "all", "course category")
		difficulty := fs.String("difficulty", "all", "beginner|intermediate|advanced")
		sortBy := fs.String("sort", "popularity", "sort order")
		search := fs.String("search", "", "search query")
		_ = fs.Parse(args)
		catalog := application.NewCatalog(app)
		if err := catalog.List(ctx, application.CatalogFilter{
			Category:   *category,
			Difficulty: *difficulty,
			SortBy:     *sortBy,
			Search:     *search,
		}); err != nil {
			return err
		}
		for _, c := range app.Courses.State().Catalog {
			fmt.Printf("%-24s %-40s %s\n", c.ID, c.Title, c.Difficulty)
		}
		return nil

	case "course":
		if len(args) != 1 {
			return fmt.Errorf("usage: course <id>")
		}
		course, err := application.NewCatalog(app).Detail(ctx, args[0])
		if err != nil {
			return err
		}
		fmt.Printf("%s by %s - %d modules, %d lessons\n",
			course.Title, course.Mentor.Name, len(course.Modules), course.LessonCount())
		return nil

	case "subscribe":
		if len(args) != 2 {
			return fmt.Errorf("usage: subscribe <course-id> monthly|quarterly|annual")
		}
		return application.NewCheckout(app).Subscribe(ctx, args[0], entity.Plan(args[1]))

	case "complete-lesson":
		if len(args) != 2 {
			return fmt.Errorf("usage: complete-lesson <course-id> <lesson-id>")
		}
		player := application.NewPlayer(app)
		if _, err := player.Load(ctx, args[0]); err != nil {
			return err
		}
		return player.CompleteLesson(ctx, args[0], args[1])

	case "feed":
		fs := flag.NewFlagSet("feed", flag.ExitOnError)
		filter := fs.String("filter", "all", "all|following")
		_ = fs.Parse(args)
		if err := application.NewFeed(app).Load(ctx, *filter); err != nil {
			return err
		}
		for _, t := range app.Profiles.State().Threads {
			fmt.Printf("@%s: %s (%d likes)\n", t.Author.Username, t.Content, t.Likes)
		}
		return nil

	case "like":
		if len(args) != 1 {
			return fmt.Errorf("usage: like <thread-id>")
		}
		return application.NewFeed(app).ToggleLike(ctx, args[0])

	case "post":
		if len(args) != 1 {
			return fmt.Errorf("usage: post <content>")
		}
		_, err := application.NewFeed(app).CreateThread(ctx, args[0], nil)
		return err

	case "profile":
		if len(args) != 1 {
			return fmt.Errorf("usage: profile <username>")
		}
		profile, err := application.NewProfile(app).Load(ctx, args[0])
		if err != nil {
			return err
		}
		fmt.Printf("%s (@%s) - %d followers, %d courses\n",
			profile.Name, profile.Username, profile.Followers, profile.Courses)
		return nil

	case "leaderboard":
		fs := flag.NewFlagSet("leaderboard", flag.ExitOnError)
		period := fs.String("period", "all-time", "week|month|all-time")
		_ = fs.Parse(args)
		rest := fs.Args()
		if len(rest) != 1 {
			return fmt.Errorf("usage: leaderboard [-period p] <course-id>")
		}
		board := application.NewLeaderboard(app)
		entries, err := board.Load(ctx, rest[0], entity.LeaderboardPeriod(*period))
		if err != nil {
			return err
		}
		for i, e := range entries {
			fmt.Printf("#%d %-24s %.0f\n", i+1, e.Name, e.Score)
		}
		if badge := board.RankBadge(entries); badge != "" {
			fmt.Println(badge)
		}
		return nil

	case "dashboard":
		dash := application.NewDashboard(app)
		user := app.Auth.User()
		if user != nil && user.Role == entity.RoleMentor {
			data, err := dash.Mentor(ctx)
			if err != nil {
				return err
			}
			fmt.Printf("%d students, revenue %d\n", data.Stats.TotalStudents, data.Stats.TotalRevenue)
			return nil
		}
		data, err := dash.Student(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("%d enrolled courses, %d completed\n",
			len(data.EnrolledCourses), data.Stats.CoursesCompleted)
		return nil

	case "notifications":
		inbox := application.NewNotifications(app)
		if err := inbox.Load(ctx); err != nil {
			return err
		}
		for _, n := range app.Notifications.State().Items {
			marker := " "
			if !n.Read {
				marker = "*"
			}
			fmt.Printf("%s [%s] %s\n", marker, n.Type, n.Title)
		}
		fmt.Printf("%d unread\n", app.Notifications.UnreadCount())
		return nil

	case "certificates":
		certs, err := application.NewCareer(app).Certificates(ctx)
		if err != nil {
			return err
		}
		for _, c := range certs {
			fmt.Printf("%s - issued %s\n", c.CourseName, c.IssuedDate)
		}
		return nil

	case "internships":
		offers, err := application.NewCareer(app).Internships(ctx)
		if err != nil {
			return err
		}
		for _, o := range offers {
			fmt.Printf("%-24s %s (%d months) [%s]\n", o.ID, o.CourseName, o.Duration, o.Status)
		}
		return nil

	case "accept-internship", "decline-internship":
		if len(args) != 1 {
			return fmt.Errorf("usage: %s <internship-id>", cmd)
		}
		career := application.NewCareer(app)
		offer := entity.Internship{ID: args[0]}
		var err error
		if cmd == "accept-internship" {
			offer, err = career.Accept(ctx, offer)
		} else {
			offer, err = career.Decline(ctx, offer)
		}
		if err != nil {
			return err
		}
		fmt.Printf("%s is now %s\n", offer.ID, offer.Status)
		return nil

	case "delete-account":
		return application.NewSettings(app).RequestAccountDeletion(ctx)

	case "logout":
		application.NewSettings(app).Logout()
		return nil

	default:
		usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: codementor <command> [flags]

commands:
  whoami, select-role, login, complete-profile
  courses, course, subscribe, complete-lesson
  feed, like, post, profile, leaderboard
  dashboard, notifications, certificates, internships
  accept-internship, decline-internship, delete-account, logout`)
}
