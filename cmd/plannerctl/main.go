package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"social-planner/core/config"
	"social-planner/core/constants"
	"social-planner/core/logger"
	"social-planner/core/utils"
	copyentity "social-planner/modules/microcopy/entity"
	copyservice "social-planner/modules/microcopy/service"
	"social-planner/modules/schedule/dto"
	"social-planner/modules/schedule/entity"
	"social-planner/modules/schedule/service"

	"github.com/alecthomas/kong"
	"github.com/coder/quartz"
	"github.com/google/uuid"
)

var cli struct {
	Debug bool `help:"enable debug logging"`

	Rank      RankCmd      `cmd:"" help:"rank candidate slots from a JSON file for a Suggested-Hours preset"`
	Copy      CopyCmd      `cmd:"" help:"preview the copy shown for a given day"`
	Countdown CountdownCmd `cmd:"" help:"print the label shown until ideas refresh at local midnight"`
	Token     TokenCmd     `cmd:"" help:"issue an access token for calling private routes (needs JWT_SECRET)"`
}

type RankCmd struct {
	File     string `arg:"" type:"existingfile" help:"JSON array of slots with start, end, available_count, total_members"`
	Preset   string `help:"preset name (early_bird|default|night_owl|late_late)" default:"default"`
	Timezone string `help:"IANA timezone the slots are judged in" default:"UTC"`
	JSON     bool   `help:"print JSON instead of a table"`
}

type CopyCmd struct {
	Date      string `help:"calendar day YYYY-MM-DD; defaults to today in --timezone"`
	Timezone  string `help:"IANA timezone" default:"UTC"`
	Archetype string `help:"plan archetype, e.g. reconnect or birthday"`
	Category  string `help:"activity category, e.g. food"`
	Friend    string `help:"friend first name for drafts"`
	Event     string `help:"event title for drafts"`
	Accepts   int    `help:"number of accepts to simulate" default:"5"`
}

type CountdownCmd struct {
	Timezone string `help:"IANA timezone" default:"UTC"`
}

type TokenCmd struct {
	UserID string        `help:"user id to issue the token for; random when empty"`
	TTL    time.Duration `help:"token lifetime; 0 uses the access token default"`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("plannerctl"),
		kong.Description("Offline tools for slot ranking and copy previews"),
		kong.UsageOnError(),
		kong.BindTo(quartz.NewReal(), (*quartz.Clock)(nil)),
		kong.BindTo(os.Stdout, (*io.Writer)(nil)),
	)

	mode := "production"
	if cli.Debug {
		mode = "development"
	}
	if err := logger.Init(mode); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx.FatalIfErrorf(ctx.Run())
}

func (cmd *RankCmd) Run(out io.Writer) error {
	raw, err := os.ReadFile(cmd.File)
	if err != nil {
		return fmt.Errorf("read slots: %w", err)
	}
	var in []dto.SlotDTO
	if err := json.Unmarshal(raw, &in); err != nil {
		return fmt.Errorf("decode slots: %w", err)
	}

	loc, err := utils.LoadLocationOr(cmd.Timezone, time.UTC)
	if err != nil {
		return fmt.Errorf("timezone: %w", err)
	}

	slots := dto.ToEntitySlots(in)
	if appErr := service.ValidateSlots(slots); appErr != nil {
		return appErr
	}
	for i := range slots {
		slots[i] = slots[i].In(loc)
	}

	preset := entity.ParsePreset(cmd.Preset)
	ranked := dto.ToRankedSlotDTOs(service.RankSlotsScored(slots, preset))
	logger.Debug("plannerctl:rank", "preset", preset, "in", len(slots), "kept", len(ranked))

	if cmd.JSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(ranked)
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "#\tDAY\tTIME\tFREE\tSCORE\n")
	for i, r := range ranked {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d/%d\t%.3f\n", i+1, r.DayOfWeek, r.FormattedTime, r.AvailableCount, r.TotalMembers, r.Score)
	}
	return w.Flush()
}

func (cmd *CopyCmd) Run(clock quartz.Clock, out io.Writer) error {
	loc, err := utils.LoadLocationOr(cmd.Timezone, time.UTC)
	if err != nil {
		return fmt.Errorf("timezone: %w", err)
	}
	day := clock.Now().In(loc)
	if cmd.Date != "" {
		if day, err = time.ParseInLocation(constants.DateLayout, cmd.Date, loc); err != nil {
			return fmt.Errorf("date: %w", err)
		}
	}

	seed := copyservice.SeedForDate(day)
	archetype := copyentity.ParseArchetype(cmd.Archetype)
	completion := copyservice.GetCompletionCopy(copyservice.CompletionInput{Seed: seed, Archetype: archetype})

	fmt.Fprintf(out, "date:     %s (seed %d)\n", day.Format(constants.DateLayout), seed)
	fmt.Fprintf(out, "title:    %s\n", completion.Title)
	fmt.Fprintf(out, "subtitle: %s\n", completion.Subtitle)

	feedback := copyservice.GetAcceptFeedback(copyservice.AcceptInput{
		Seed:      seed,
		Archetype: archetype,
		Category:  copyentity.ParseCategory(cmd.Category),
	})
	for n := 1; n <= cmd.Accepts; n++ {
		if copyservice.ShouldShowAcceptFeedback(seed, n) {
			fmt.Fprintf(out, "accept %d: %s\n", n, feedback)
		} else {
			fmt.Fprintf(out, "accept %d: -\n", n)
		}
	}

	drafts := copyservice.GetDraftMessageVariants(copyservice.DraftInput{
		Seed:            seed,
		Archetype:       archetype,
		FriendFirstName: cmd.Friend,
		EventTitle:      cmd.Event,
	})
	fmt.Fprintln(out, "drafts:")
	for _, d := range drafts {
		fmt.Fprintf(out, "  - %s\n", d)
	}
	return nil
}

func (cmd *CountdownCmd) Run(clock quartz.Clock, out io.Writer) error {
	loc, err := utils.LoadLocationOr(cmd.Timezone, time.UTC)
	if err != nil {
		return fmt.Errorf("timezone: %w", err)
	}
	now := clock.Now().In(loc)
	label, ok := copyservice.FormatCountdownLabel(utils.NextMidnight(now).Sub(now))
	if !ok {
		label = "New ideas any moment"
	}
	fmt.Fprintln(out, label)
	return nil
}

func (cmd *TokenCmd) Run(out io.Writer) error {
	if _, ok := config.GetSafe(); !ok {
		if _, err := config.Load(); err != nil {
			return fmt.Errorf("load config: %w", err)
		}
	}

	userID := uuid.New()
	if cmd.UserID != "" {
		id, err := uuid.Parse(cmd.UserID)
		if err != nil {
			return fmt.Errorf("user id: %w", err)
		}
		userID = id
	}
	ttl := cmd.TTL
	if ttl <= 0 {
		ttl = constants.AccessTokenTTL
	}

	token, err := utils.GenerateToken(userID, constants.ScopeTokenAccess, ttl)
	if err != nil {
		return fmt.Errorf("generate token: %w", err)
	}
	logger.Debug("plannerctl:token", "user_id", userID.String(), "ttl", ttl.String())
	fmt.Fprintln(out, token)
	return nil
}
