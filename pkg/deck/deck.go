// Package deck implements the swipeable recipe deck: a cursor over an ordered,
// shrinking pool of recipe cards plus the favorites, skipped and rejected
// outcome sets.
package deck

// RecipeCard is one card of the deck.
type RecipeCard struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Image    string `json:"img"`
}

// SeedRecipes is the deck a new user starts with.
var SeedRecipes = []RecipeCard{
	{ID: 1, Title: "Salmon Power Bowl", Category: "High Protein", Image: "https://images.unsplash.com/photo-1512621776951-a57141f2eefd?w=1200&auto=format&fit=crop&q=60"},
	{ID: 2, Title: "Green Immunity Smoothie", Category: "Immune Support", Image: "https://images.unsplash.com/photo-1511689660979-10d79c049a0d?w=1200&auto=format&fit=crop&q=60"},
	{ID: 3, Title: "Mediterranean Chickpea Bowl", Category: "Balanced", Image: "https://images.unsplash.com/photo-1540189549336-e6e99c3679fe?w=1200&auto=format&fit=crop&q=60"},
}

// FavoritesStripSize is how many favorites the recipes screen shows.
const FavoritesStripSize = 9

// Result tells the caller what an action touched so only those pieces need
// to be written back.
type Result struct {
	// Applied is false when there was no current card and nothing happened.
	Applied   bool
	Favorites bool
	Skipped   bool
	Rejected  bool
	Cards     bool
}

// Deck is not safe for concurrent use.
type Deck struct {
	cards     []RecipeCard
	cursor    int
	favorites *IDSet
	skipped   *IDSet
	rejected  *IDSet
}

// New builds a deck over a copy of cards with the cursor at 0.
func New(cards []RecipeCard, favorites, skipped, rejected []int) *Deck {
	return &Deck{
		cards:     append([]RecipeCard(nil), cards...),
		favorites: NewIDSet(favorites...),
		skipped:   NewIDSet(skipped...),
		rejected:  NewIDSet(rejected...),
	}
}

// Cards returns a copy of the remaining cards in deck order.
func (d *Deck) Cards() []RecipeCard {
	return append(make([]RecipeCard, 0, len(d.cards)), d.cards...)
}

func (d *Deck) Len() int    { return len(d.cards) }
func (d *Deck) Cursor() int { return d.cursor }

func (d *Deck) FavoriteIDs() []int { return d.favorites.IDs() }
func (d *Deck) SkippedIDs() []int  { return d.skipped.IDs() }
func (d *Deck) RejectedIDs() []int { return d.rejected.IDs() }

func (d *Deck) IsFavorite(id int) bool { return d.favorites.Has(id) }

// Current returns the card under the cursor, if any.
func (d *Deck) Current() (RecipeCard, bool) {
	if d.cursor < 0 || d.cursor >= len(d.cards) {
		return RecipeCard{}, false
	}
	return d.cards[d.cursor], true
}

// Seek moves the cursor to i, clamped into the deck. An empty deck keeps the
// cursor at 0.
func (d *Deck) Seek(i int) {
	switch {
	case i < 0 || len(d.cards) == 0:
		d.cursor = 0
	case i >= len(d.cards):
		d.cursor = len(d.cards) - 1
	default:
		d.cursor = i
	}
}

// span is the modulus for cursor moves; an empty deck counts as 1.
func (d *Deck) span() int {
	if len(d.cards) == 0 {
		return 1
	}
	return len(d.cards)
}

func (d *Deck) advance() {
	d.cursor = (d.cursor + 1) % d.span()
}

// Like adds the current card to favorites and moves on.
func (d *Deck) Like() Result {
	card, ok := d.Current()
	if !ok {
		return Result{}
	}
	res := Result{Applied: true, Favorites: d.favorites.Add(card.ID)}
	d.advance()
	return res
}

// Skip ("not now") adds the current card to skipped and moves on.
func (d *Deck) Skip() Result {
	card, ok := d.Current()
	if !ok {
		return Result{}
	}
	res := Result{Applied: true, Skipped: d.skipped.Add(card.ID)}
	d.advance()
	return res
}

// SuperLike moves the current card to the front of favorites and moves on.
func (d *Deck) SuperLike() Result {
	card, ok := d.Current()
	if !ok {
		return Result{}
	}
	res := Result{Applied: true, Favorites: d.favorites.Promote(card.ID)}
	d.advance()
	return res
}

// Reject marks the current card rejected, drops it from the deck for good and
// resets the cursor to the first card.
func (d *Deck) Reject() Result {
	card, ok := d.Current()
	if !ok {
		return Result{}
	}
	res := Result{Applied: true, Rejected: d.rejected.Add(card.ID), Cards: true}
	kept := d.cards[:0:0]
	for _, c := range d.cards {
		if c.ID != card.ID {
			kept = append(kept, c)
		}
	}
	d.cards = kept
	d.cursor = 0
	return res
}

// Undo steps the cursor back one card, wrapping. It only rewinds the view:
// favorites and skipped keep whatever the earlier swipe recorded.
func (d *Deck) Undo() Result {
	if len(d.cards) == 0 {
		return Result{}
	}
	n := d.span()
	d.cursor = (d.cursor - 1 + n) % n
	return Result{Applied: true}
}

// Favorites resolves favorite ids to cards, looking in the deck first and then
// in catalog, in favorites order. Ids found nowhere are skipped. limit <= 0
// means no cap.
func (d *Deck) Favorites(catalog []RecipeCard, limit int) []RecipeCard {
	byID := make(map[int]RecipeCard, len(d.cards)+len(catalog))
	for _, c := range catalog {
		byID[c.ID] = c
	}
	for _, c := range d.cards {
		byID[c.ID] = c
	}
	out := []RecipeCard{}
	for _, id := range d.favorites.IDs() {
		if limit > 0 && len(out) >= limit {
			break
		}
		if c, ok := byID[id]; ok {
			out = append(out, c)
		}
	}
	return out
}
