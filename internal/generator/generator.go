// Package generator produces synthetic member datasets with deliberately
// injected data-quality defects, used to exercise the cleaning pipeline and
// the health metrics engine.
package generator

import (
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"communitypulse/internal/dataset"
	"communitypulse/pkg/domain"
)

// Messiness selects a defect-injection preset.
type Messiness string

const (
	MessinessLow    Messiness = "low"
	MessinessMedium Messiness = "medium"
	MessinessHigh   Messiness = "high"
)

// Config controls a single generation run. A zero Seed derives one from the
// clock; fix it for reproducible datasets.
type Config struct {
	Records   int       `validate:"gte=0"`
	Messiness Messiness `validate:"required,oneof=low medium high"`
	Seed      int64
}

// rates holds per-defect injection probabilities.
type rates struct {
	duplicate    float64 // fraction of rows re-appended as duplicates
	nameUpper    float64 // chance a name is uppercased
	nameLower    float64 // chance a name is lowercased
	emailCorrupt float64 // chance "@" becomes " at "
	dateUS       float64 // chance Join_Date renders as MM/DD/YYYY
	dateEuro     float64 // chance Join_Date renders as DD-MM-YYYY
	dateUnknown  float64 // chance Join_Date becomes the "Unknown" sentinel
	missing      float64 // chance Event_Attendance / Last_Login go missing
}

// presets maps messiness levels to fixed injection rates. Medium mirrors the
// defect mix of the original messy-club dataset; low halves it, high doubles
// it.
var presets = map[Messiness]rates{
	MessinessLow: {
		duplicate: 0.05, nameUpper: 0.05, nameLower: 0.05, emailCorrupt: 0.025,
		dateUS: 0.05, dateEuro: 0.05, dateUnknown: 0.025, missing: 0.025,
	},
	MessinessMedium: {
		duplicate: 0.10, nameUpper: 0.10, nameLower: 0.10, emailCorrupt: 0.05,
		dateUS: 0.10, dateEuro: 0.10, dateUnknown: 0.05, missing: 0.05,
	},
	MessinessHigh: {
		duplicate: 0.20, nameUpper: 0.20, nameLower: 0.20, emailCorrupt: 0.10,
		dateUS: 0.20, dateEuro: 0.20, dateUnknown: 0.10, missing: 0.10,
	},
}

var firstNames = []string{
	"James", "Mary", "John", "Patricia", "Robert", "Jennifer", "Michael",
	"Linda", "David", "Elizabeth", "William", "Barbara", "Richard", "Susan",
	"Joseph", "Jessica", "Thomas", "Sarah", "Carol", "Daniel", "Nancy",
	"Mark", "Lisa", "Paul", "Karen", "Steven", "Emma", "Kevin", "Alice",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller",
	"Davis", "Rodriguez", "Martinez", "Wilson", "Anderson", "Taylor",
	"Thomas", "Moore", "Jackson", "Martin", "Lee", "Thompson", "White",
	"O'Brien", "Harris", "Clark", "Lewis", "Walker", "Hall", "Young",
}

var emailDomains = []string{
	"example.com", "example.org", "test.com", "mail.net", "pulse.org",
}

var eventChoices = []string{"Spring Gala", "Summer Camp", "Fall Fundraiser", "None"}

// Generator builds messy member datasets.
type Generator struct {
	logger   *slog.Logger
	validate *validator.Validate
}

// New creates a generator.
func New(logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{
		logger:   logger,
		validate: validator.New(),
	}
}

// Generate produces a member dataset of cfg.Records base rows plus injected
// duplicates, with defects applied at the preset rates for cfg.Messiness.
func (g *Generator) Generate(cfg Config) (*dataset.Dataset, error) {
	if err := g.validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid generator config: %w", err)
	}
	r := presets[cfg.Messiness]

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	ds := dataset.New(domain.MemberColumns()...)
	now := time.Now()

	for i := 0; i < cfg.Records; i++ {
		// IDs come from the seeded RNG so a fixed seed reproduces the
		// dataset exactly, IDs included.
		id, err := uuid.NewRandomFromReader(rng)
		if err != nil {
			return nil, fmt.Errorf("generating member id: %w", err)
		}
		name := firstNames[rng.Intn(len(firstNames))] + " " + lastNames[rng.Intn(len(lastNames))]
		email := emailFor(name, rng)
		joinDate := now.AddDate(0, 0, -rng.Intn(730))
		lastLogin := now.Add(-time.Duration(rng.Intn(365*24)) * time.Hour)
		event := eventChoices[rng.Intn(len(eventChoices))]

		registration := dataset.Null()
		if event != "None" && rng.Float64() > 0.4 {
			registration = dataset.Date(now.AddDate(0, -6+rng.Intn(6), 0))
		}

		if err := ds.AppendRow(
			dataset.String(id.String()),
			dataset.String(name),
			dataset.String(email),
			dataset.Date(joinDate),
			dataset.Time(lastLogin),
			dataset.Int(int64(rng.Intn(20))),
			dataset.String(role(rng)),
			dataset.String(event),
			registration,
		); err != nil {
			return nil, fmt.Errorf("appending member row: %w", err)
		}
	}

	out := g.injectDefects(ds, r, rng)
	g.logger.Info("generated messy member dataset",
		slog.Int("requested_records", cfg.Records),
		slog.Int("rows", out.NumRows()),
		slog.String("messiness", string(cfg.Messiness)),
		slog.Int64("seed", seed))
	return out, nil
}

// injectDefects appends duplicate rows, then corrupts names, emails, dates
// and numeric cells in place at the configured rates, and finally shuffles
// row order.
func (g *Generator) injectDefects(ds *dataset.Dataset, r rates, rng *rand.Rand) *dataset.Dataset {
	base := ds.NumRows()
	var rows []dataset.Row
	ds.Each(func(row dataset.Row) {
		rows = append(rows, row.Clone())
	})

	numDup := int(float64(base) * r.duplicate)
	for i := 0; i < numDup && base > 0; i++ {
		rows = append(rows, rows[rng.Intn(base)].Clone())
	}

	nameIdx, _ := ds.ColumnIndex(domain.ColumnName)
	emailIdx, _ := ds.ColumnIndex(domain.ColumnEmail)
	joinIdx, _ := ds.ColumnIndex(domain.ColumnJoinDate)
	loginIdx, _ := ds.ColumnIndex(domain.ColumnLastLogin)
	attIdx, _ := ds.ColumnIndex(domain.ColumnAttendance)

	for _, row := range rows {
		if s, ok := row[nameIdx].AsString(); ok {
			switch p := rng.Float64(); {
			case p < r.nameUpper:
				row[nameIdx] = dataset.String(strings.ToUpper(s))
			case p < r.nameUpper+r.nameLower:
				row[nameIdx] = dataset.String(strings.ToLower(s))
			}
		}
		if s, ok := row[emailIdx].AsString(); ok && rng.Float64() < r.emailCorrupt {
			row[emailIdx] = dataset.String(strings.Replace(s, "@", " at ", 1))
		}
		if t, ok := row[joinIdx].AsDate(); ok {
			switch p := rng.Float64(); {
			case p < r.dateUS:
				row[joinIdx] = dataset.String(t.Format("01/02/2006"))
			case p < r.dateUS+r.dateEuro:
				row[joinIdx] = dataset.String(t.Format("02-01-2006"))
			case p < r.dateUS+r.dateEuro+r.dateUnknown:
				row[joinIdx] = dataset.String("Unknown")
			}
		}
		if rng.Float64() < r.missing {
			row[attIdx] = dataset.Null()
		}
		if rng.Float64() < r.missing {
			row[loginIdx] = dataset.Null()
		}
	}

	rng.Shuffle(len(rows), func(i, j int) {
		rows[i], rows[j] = rows[j], rows[i]
	})

	out := dataset.New(ds.Columns()...)
	for _, row := range rows {
		// Rows came from the dataset, widths always match.
		_ = out.AppendRow(row...)
	}
	return out
}

// emailFor derives a plausible address from a member name.
func emailFor(name string, rng *rand.Rand) string {
	local := strings.ToLower(strings.ReplaceAll(name, " ", "."))
	local = strings.ReplaceAll(local, "'", "")
	return local + "@" + emailDomains[rng.Intn(len(emailDomains))]
}

// role draws a member role with the observed skew: mostly members, a few
// admins, some guests.
func role(rng *rand.Rand) string {
	switch p := rng.Float64(); {
	case p < 0.80:
		return domain.RoleMember
	case p < 0.85:
		return domain.RoleAdmin
	default:
		return domain.RoleGuest
	}
}
