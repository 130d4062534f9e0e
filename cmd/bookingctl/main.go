// Command bookingctl is a terminal client for the remote booking API. The
// session, catalogue and booking logic live in internal/core; this binary
// only parses arguments, renders output, and supplies the UI collaborators
// (notifier, confirmer, redirector).
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/salonova/booking-client/internal/core/domain"
	"github.com/salonova/booking-client/internal/core/ports"
	"github.com/salonova/booking-client/internal/core/service"
	"github.com/salonova/booking-client/internal/infrastructure/api"
	"github.com/salonova/booking-client/internal/infrastructure/dedup"
	"github.com/salonova/booking-client/internal/infrastructure/diag"
	"github.com/salonova/booking-client/internal/infrastructure/store"
	"github.com/salonova/booking-client/internal/pkg/config"
	"github.com/salonova/booking-client/pkg/logger"
)

type consoleNotifier struct{}

func (consoleNotifier) Success(msg string) { fmt.Fprintln(os.Stdout, msg) }
func (consoleNotifier) Error(msg string)   { fmt.Fprintln(os.Stderr, "Error: "+msg) }

type consoleConfirmer struct {
	in *bufio.Reader
}

func (c *consoleConfirmer) Confirm(prompt string) bool {
	fmt.Fprintf(os.Stderr, "%s [y/N]: ", prompt)
	line, err := c.in.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

// logRedirector records surface changes instead of rendering them; the
// terminal has no screens to navigate between.
type logRedirector struct {
	log zerolog.Logger
}

func (r logRedirector) Redirect(target ports.Surface) {
	r.log.Info().Str("surface", string(target)).Msg("navigate")
}

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.Env == "development"})

	dataDir, err := cfg.ResolveDataDir()
	if err != nil {
		log.Fatal().Err(err).Msg("cannot resolve data directory")
	}
	st, err := store.Open(dataDir, log)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot open credential store")
	}
	defer st.Close()

	cred := service.NewCredential()
	client := api.NewClient(api.Config{
		BaseURL:   cfg.APIBaseURL,
		Timeout:   cfg.HTTPTimeout,
		RateLimit: cfg.RateLimit,
		Burst:     cfg.RateBurst,
	}, cred, log)

	notifier := consoleNotifier{}
	confirmer := &consoleConfirmer{in: bufio.NewReader(os.Stdin)}
	redirector := logRedirector{log: log}

	sess := service.NewSessionManager(client, st, cred, notifier, redirector, log)
	sess.Restore()

	guard := dedup.NewGuard()
	services := service.NewServiceController(client, sess, guard, notifier, log)
	bookings := service.NewBookingController(client, sess, guard, notifier, confirmer, log)
	businesses := service.NewBusinessController(client, sess, guard, notifier, log)

	if cfg.Diag.Enabled {
		diag.Start(cfg.Diag.Addr, log)
	}

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	ctx := context.Background()
	ok := true
	switch os.Args[1] {
	case "login":
		ok = runLogin(ctx, sess, os.Args[2:])
	case "signup":
		ok = runSignUp(ctx, sess, os.Args[2:])
	case "logout":
		sess.Logout()
	case "whoami":
		ok = runWhoami(sess)
	case "passwd":
		ok = runPasswd(ctx, sess, os.Args[2:])
	case "reset-password":
		ok = runResetPassword(ctx, sess, os.Args[2:])
	case "users":
		ok = runUsers(ctx, client, os.Args[2:])
	case "services":
		ok = runServices(ctx, services, os.Args[2:])
	case "bookings":
		ok = runBookings(ctx, sess, bookings, os.Args[2:])
	case "businesses":
		ok = runBusinesses(ctx, businesses, os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if !ok {
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: bookingctl <command> [flags]

commands:
  login       -email <addr> -password <pw>
  signup      -first <name> -last <name> -email <addr> -phone <num> -password <pw> [-admin]
  logout
  whoami
  passwd          -old <pw> -new <pw>
  reset-password  -email <addr>
  users       list | get | me
  services    list | create | update | delete
  bookings    list | create | accept | cancel | delete
  businesses  list | mine | create | update | delete`)
}

func runLogin(ctx context.Context, sess *service.SessionManager, args []string) bool {
	fs := newFlagSet("login")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	fs.Parse(args)
	return sess.Login(ctx, *email, *password)
}

func runSignUp(ctx context.Context, sess *service.SessionManager, args []string) bool {
	fs := newFlagSet("signup")
	first := fs.String("first", "", "first name")
	last := fs.String("last", "", "last name")
	email := fs.String("email", "", "account email")
	phone := fs.String("phone", "", "phone number")
	password := fs.String("password", "", "account password")
	admin := fs.Bool("admin", false, "register an operator account")
	fs.Parse(args)

	userType := domain.UserTypeUser
	if *admin {
		userType = domain.UserTypeAdmin
	}
	return sess.SignUp(ctx, ports.SignUpInput{
		FirstName:   *first,
		LastName:    *last,
		Email:       *email,
		PhoneNumber: *phone,
		Password:    *password,
		Type:        userType,
	})
}

func runPasswd(ctx context.Context, sess *service.SessionManager, args []string) bool {
	fs := newFlagSet("passwd")
	oldPw := fs.String("old", "", "current password")
	newPw := fs.String("new", "", "new password")
	fs.Parse(args)
	return sess.ChangePassword(ctx, *oldPw, *newPw)
}

func runResetPassword(ctx context.Context, sess *service.SessionManager, args []string) bool {
	fs := newFlagSet("reset-password")
	email := fs.String("email", "", "account email")
	fs.Parse(args)
	return sess.RequestPasswordReset(ctx, *email)
}

func runWhoami(sess *service.SessionManager) bool {
	id, ok := sess.Identity()
	if !ok {
		fmt.Println("not authenticated")
		return false
	}
	fmt.Printf("%s %s <%s> type=%s status=%s\n", id.FirstName, id.LastName, id.Email, id.Type, id.Status)
	return true
}

func runUsers(ctx context.Context, gw ports.UserGateway, args []string) bool {
	if len(args) < 1 {
		usage()
		return false
	}
	printUser := func(u domain.Identity) {
		fmt.Printf("%s  %s %s <%s> type=%s status=%s\n", u.ID, u.FirstName, u.LastName, u.Email, u.Type, u.Status)
	}
	switch args[0] {
	case "list":
		users, err := gw.ListUsers(ctx)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error: "+err.Error())
			return false
		}
		for _, u := range users {
			printUser(u)
		}
		return true
	case "get":
		fs := newFlagSet("users get")
		id := fs.String("id", "", "user id")
		fs.Parse(args[1:])
		u, err := gw.GetUser(ctx, *id)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error: "+err.Error())
			return false
		}
		printUser(*u)
		return true
	case "me":
		u, err := gw.CurrentUser(ctx)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error: "+err.Error())
			return false
		}
		printUser(*u)
		return true
	}
	usage()
	return false
}

func runServices(ctx context.Context, ctl *service.ServiceController, args []string) bool {
	if len(args) < 1 {
		usage()
		return false
	}
	switch args[0] {
	case "list":
		ctl.FetchAll(ctx)
		if msg := ctl.Err(); msg != "" {
			return false
		}
		for _, s := range ctl.Items() {
			fmt.Printf("%s  %-30s %4d min  %8.2f EUR\n", s.ID, s.ServiceName, s.DurationMinutes, s.PriceEUR)
		}
		return true
	case "create", "update":
		fs := newFlagSet("services " + args[0])
		id := fs.String("id", "", "service id (update only)")
		name := fs.String("name", "", "service name")
		desc := fs.String("desc", "", "description")
		duration := fs.Int("duration", 0, "duration in minutes")
		price := fs.Float64("price", 0, "price in EUR")
		fs.Parse(args[1:])
		in := ports.ServiceInput{ServiceName: *name, Description: *desc, DurationMinutes: *duration, PriceEUR: *price}
		if args[0] == "create" {
			return ctl.Create(ctx, in)
		}
		return ctl.Update(ctx, *id, in)
	case "delete":
		fs := newFlagSet("services delete")
		id := fs.String("id", "", "service id")
		fs.Parse(args[1:])
		return ctl.Delete(ctx, *id)
	}
	usage()
	return false
}

func runBookings(ctx context.Context, sess *service.SessionManager, ctl *service.BookingController, args []string) bool {
	if len(args) < 1 {
		usage()
		return false
	}
	switch args[0] {
	case "list":
		ctl.FetchAll(ctx)
		if msg := ctl.Err(); msg != "" {
			return false
		}
		for _, b := range ctl.Items() {
			accept, cancel, del := ctl.Actions(b.ID)
			fmt.Printf("%s  service=%s  %s  %-9s  actions=%s\n",
				b.ID, b.ServiceID, b.DateTime.Format(time.RFC3339), b.Status, renderActions(accept, cancel, del))
		}
		return true
	case "create":
		fs := newFlagSet("bookings create")
		serviceID := fs.String("service", "", "service id")
		at := fs.String("at", "", "date and time (RFC 3339)")
		fs.Parse(args[1:])

		id, authed := sess.Identity()
		if !authed {
			fmt.Fprintln(os.Stderr, "Error: "+domain.ErrNotAuthenticated.Error())
			return false
		}
		when, err := time.Parse(time.RFC3339, *at)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error: -at must be RFC 3339, e.g. 2026-09-01T10:00:00Z")
			return false
		}
		return ctl.Create(ctx, ports.BookingInput{UserID: id.ID, ServiceID: *serviceID, DateTime: when})
	case "accept", "cancel", "delete":
		fs := newFlagSet("bookings " + args[0])
		id := fs.String("id", "", "booking id")
		fs.Parse(args[1:])
		// Transitions act on the last-known status: fetch first.
		ctl.FetchAll(ctx)
		switch args[0] {
		case "accept":
			return ctl.Accept(ctx, *id)
		case "cancel":
			return ctl.Cancel(ctx, *id)
		default:
			return ctl.Delete(ctx, *id)
		}
	}
	usage()
	return false
}

func runBusinesses(ctx context.Context, ctl *service.BusinessController, args []string) bool {
	if len(args) < 1 {
		usage()
		return false
	}
	switch args[0] {
	case "list", "mine":
		if args[0] == "mine" {
			ctl.FetchMine(ctx)
		} else {
			ctl.FetchAll(ctx)
		}
		if msg := ctl.Err(); msg != "" {
			return false
		}
		for _, b := range ctl.Items() {
			fmt.Printf("%s  %-30s %s\n", b.ID, b.BusinessName, b.Description)
		}
		return true
	case "create", "update":
		fs := newFlagSet("businesses " + args[0])
		id := fs.String("id", "", "business id (update only)")
		name := fs.String("name", "", "business name")
		desc := fs.String("desc", "", "description")
		fs.Parse(args[1:])
		in := ports.BusinessInput{BusinessName: *name, Description: *desc}
		if args[0] == "create" {
			return ctl.Create(ctx, in)
		}
		return ctl.Update(ctx, *id, in)
	case "delete":
		fs := newFlagSet("businesses delete")
		id := fs.String("id", "", "business id")
		fs.Parse(args[1:])
		return ctl.Delete(ctx, *id)
	}
	usage()
	return false
}

func newFlagSet(name string) *flag.FlagSet {
	return flag.NewFlagSet(name, flag.ExitOnError)
}

func renderActions(accept, cancel, del bool) string {
	var out []string
	if accept {
		out = append(out, "accept")
	}
	if cancel {
		out = append(out, "cancel")
	}
	if del {
		out = append(out, "delete")
	}
	if len(out) == 0 {
		return "-"
	}
	return strings.Join(out, ",")
}
