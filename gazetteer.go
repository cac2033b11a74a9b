package textpulse

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// A Gazetteer holds the name lists the entity recognizer consults when
// classifying capitalized spans: known organizations, locations, given names,
// and products, plus the structural cues (corporate suffixes, location
// indicator words, personal titles) that bias classification. Lookups are
// case-insensitive. Safe for concurrent use once built.
type Gazetteer struct {
	mu            sync.RWMutex
	organizations map[string]bool
	locations     map[string]bool
	firstNames    map[string]bool
	products      map[string]bool
}

// gazetteerFile is the YAML schema accepted by MergeFile.
type gazetteerFile struct {
	Organizations []string `yaml:"organizations"`
	Locations     []string `yaml:"locations"`
	FirstNames    []string `yaml:"first_names"`
	Products      []string `yaml:"products"`
}

// DefaultGazetteer returns a gazetteer seeded with the built-in name lists.
func DefaultGazetteer() *Gazetteer {
	g := &Gazetteer{
		organizations: make(map[string]bool, len(baseOrganizations)),
		locations:     make(map[string]bool, len(baseLocations)),
		firstNames:    make(map[string]bool, len(baseFirstNames)),
		products:      make(map[string]bool, len(baseProducts)),
	}
	for _, name := range baseOrganizations {
		g.organizations[strings.ToLower(name)] = true
	}
	for _, name := range baseLocations {
		g.locations[strings.ToLower(name)] = true
	}
	for _, name := range baseFirstNames {
		g.firstNames[strings.ToLower(name)] = true
	}
	for _, name := range baseProducts {
		g.products[strings.ToLower(name)] = true
	}
	return g
}

// MergeFile loads additional names from a YAML file and merges them into the
// gazetteer. Existing entries are kept.
func (g *Gazetteer) MergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading gazetteer file: %w", err)
	}

	var file gazetteerFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("%w: parsing gazetteer file: %v", ErrInvalidConfig, err)
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	for _, name := range file.Organizations {
		g.organizations[strings.ToLower(name)] = true
	}
	for _, name := range file.Locations {
		g.locations[strings.ToLower(name)] = true
	}
	for _, name := range file.FirstNames {
		g.firstNames[strings.ToLower(name)] = true
	}
	for _, name := range file.Products {
		g.products[strings.ToLower(name)] = true
	}
	return nil
}

func (g *Gazetteer) isOrganization(name string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.organizations[strings.ToLower(name)]
}

func (g *Gazetteer) isLocation(name string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.locations[strings.ToLower(name)]
}

func (g *Gazetteer) isFirstName(name string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.firstNames[strings.ToLower(name)]
}

func (g *Gazetteer) isProduct(name string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.products[strings.ToLower(name)]
}

// known reports whether the name appears in any list.
func (g *Gazetteer) known(name string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	lower := strings.ToLower(name)
	return g.organizations[lower] || g.locations[lower] || g.firstNames[lower] || g.products[lower]
}

// orgSuffixes mark a capitalized span as an organization when they end it.
var orgSuffixes = map[string]bool{
	"inc": true, "corp": true, "corporation": true, "ltd": true, "llc": true,
	"company": true, "co": true, "group": true, "holdings": true,
	"industries": true, "enterprises": true, "partners": true,
	"association": true, "foundation": true, "institute": true,
	"university": true, "college": true, "bank": true, "labs": true,
	"technologies": true, "systems": true, "solutions": true, "agency": true,
	"department": true, "ministry": true, "committee": true, "council": true,
}

// locationIndicators mark a span as a location when they appear in it.
var locationIndicators = map[string]bool{
	"city": true, "county": true, "state": true, "province": true,
	"river": true, "lake": true, "mountain": true, "mount": true,
	"island": true, "bay": true, "beach": true, "valley": true,
	"street": true, "avenue": true, "boulevard": true, "road": true,
	"north": true, "south": true, "east": true, "west": true,
	"republic": true, "kingdom": true,
}

// personTitles preceding a capitalized span mark it as a person.
var personTitles = map[string]bool{
	"mr": true, "mrs": true, "ms": true, "dr": true, "prof": true,
	"professor": true, "president": true, "senator": true, "judge": true,
	"captain": true, "general": true, "sir": true, "dame": true,
	"lord": true, "lady": true, "king": true, "queen": true, "prince": true,
	"princess": true, "ceo": true, "director": true, "chairman": true,
}

// personSuffixes following a capitalized span mark it as a person.
var personSuffixes = map[string]bool{
	"jr": true, "sr": true, "ii": true, "iii": true, "iv": true,
	"phd": true, "md": true, "esq": true,
}

var baseOrganizations = []string{
	"Google", "Microsoft", "Apple", "Amazon", "Meta", "Facebook", "Netflix",
	"Tesla", "IBM", "Intel", "Oracle", "Samsung", "Sony", "Toyota", "Boeing",
	"Airbus", "NASA", "FBI", "CIA", "WHO", "UNESCO", "UNICEF", "NATO",
	"Interpol", "Greenpeace", "Reuters", "Bloomberg", "BBC", "CNN",
	"Harvard University", "Stanford University", "MIT", "Oxford University",
	"World Bank", "United Nations", "European Union", "Red Cross",
	"Goldman Sachs", "JPMorgan Chase", "Morgan Stanley", "Deutsche Bank",
	"Pfizer", "Moderna", "SpaceX", "OpenAI", "Nvidia", "Adobe", "Salesforce",
	"Spotify", "Uber", "Airbnb", "PayPal", "Visa", "Mastercard",
}

var baseLocations = []string{
	"London", "Paris", "Berlin", "Madrid", "Rome", "Vienna", "Amsterdam",
	"Brussels", "Lisbon", "Dublin", "Moscow", "Kyiv", "Warsaw", "Prague",
	"Tokyo", "Beijing", "Shanghai", "Seoul", "Delhi", "Mumbai", "Bangkok",
	"Singapore", "Sydney", "Melbourne", "Toronto", "Vancouver", "Montreal",
	"New York", "Los Angeles", "Chicago", "Houston", "Boston", "Seattle",
	"San Francisco", "Washington", "Miami", "Atlanta", "Dallas", "Denver",
	"Mexico City", "Sao Paulo", "Buenos Aires", "Cairo", "Lagos", "Nairobi",
	"Johannesburg", "Cape Town", "Istanbul", "Dubai", "Tel Aviv",
	"United States", "United Kingdom", "Germany", "France", "Spain", "Italy",
	"Japan", "China", "India", "Brazil", "Canada", "Australia", "Russia",
	"Mexico", "Egypt", "Nigeria", "Kenya", "Turkey", "Greece", "Sweden",
	"Norway", "Denmark", "Finland", "Poland", "Ukraine", "Switzerland",
	"Europe", "Asia", "Africa", "America", "Antarctica",
	"California", "Texas", "Florida", "Alaska", "Hawaii",
}

var baseFirstNames = []string{
	"James", "John", "Robert", "Michael", "William", "David", "Richard",
	"Joseph", "Thomas", "Charles", "Daniel", "Matthew", "Anthony", "Mark",
	"Paul", "Steven", "Andrew", "Kenneth", "George", "Edward", "Brian",
	"Kevin", "Ronald", "Timothy", "Jason", "Jeffrey", "Ryan", "Jacob",
	"Mary", "Patricia", "Jennifer", "Linda", "Elizabeth", "Barbara", "Susan",
	"Jessica", "Sarah", "Karen", "Nancy", "Lisa", "Margaret", "Betty",
	"Sandra", "Ashley", "Dorothy", "Kimberly", "Emily", "Donna", "Michelle",
	"Carol", "Amanda", "Melissa", "Deborah", "Stephanie", "Rebecca", "Laura",
	"Anna", "Emma", "Olivia", "Sophia", "Isabella", "Charlotte", "Grace",
}

var baseProducts = []string{
	"iPhone", "iPad", "MacBook", "Android", "Windows", "Linux", "Chrome",
	"Firefox", "Photoshop", "Excel", "PowerPoint", "Kindle", "PlayStation",
	"Xbox", "Tesla Model S", "Boeing 747", "Airbus A380",
}
