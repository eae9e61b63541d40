// Package waytable provides the sortable, searchable waypoint table the
// sequencer synchronizes with. The sequencer core only ever sees the
// bridge.Table contract; this package is the in-process implementation used
// by the demo host and the tests.
package waytable

import (
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/placeways/waymark/internal/logging"
	"github.com/placeways/waymark/internal/models"
)

// Table errors.
var (
	ErrRowNotFound       = errors.New("row not found")
	ErrAlreadySubscribed = errors.New("subscriber name already registered")
	ErrNotSubscribed     = errors.New("subscriber not registered")
)

// SortColumn selects which field orders the table.
type SortColumn string

const (
	SortByTitle     SortColumn = "title"
	SortByStartYear SortColumn = "start_year"
	SortByPlaceID   SortColumn = "place_id"
)

// SortColumns lists the cycle order the UI steps through.
var SortColumns = []SortColumn{SortByTitle, SortByStartYear, SortByPlaceID}

const defaultPageSize = 10

// Service holds the table state: rows, sort order, search filter,
// pagination window and the single highlighted row.
type Service struct {
	logger zerolog.Logger

	mu          sync.RWMutex
	rows        []models.Waypoint
	column      SortColumn
	descending  bool
	filter      string
	highlighted string
	page        int
	pageSize    int

	subsMu sync.RWMutex
	subs   map[string]func(placeID string)
}

// NewService creates a table over the given waypoints, sorted by title
// ascending.
func NewService(rows []models.Waypoint, pageSize int) *Service {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	s := &Service{
		logger:   logging.Component("waytable"),
		rows:     append([]models.Waypoint(nil), rows...),
		column:   SortByTitle,
		pageSize: pageSize,
		subs:     make(map[string]func(string)),
	}
	s.resortLocked()
	return s
}

// Len returns the total row count, ignoring the search filter.
func (s *Service) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rows)
}

// SortOrder returns all rows in the current sort order. The search filter
// narrows what is visible, not what is ordered, so the sequencer derives
// its sequence from the full set.
func (s *Service) SortOrder() []models.Waypoint {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Waypoint(nil), s.rows...)
}

// Sort returns the current sort column and direction.
func (s *Service) Sort() (SortColumn, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.column, s.descending
}

// SetSort reorders the table. The highlighted row keeps its identity, not
// its position.
func (s *Service) SetSort(column SortColumn, descending bool) {
	s.mu.Lock()
	s.column = column
	s.descending = descending
	s.resortLocked()
	s.scrollHighlightIntoViewLocked()
	s.mu.Unlock()

	s.logger.Debug().
		Str("column", string(column)).
		Bool("descending", descending).
		Msg("sort changed")
}

func (s *Service) resortLocked() {
	column, descending := s.column, s.descending
	sort.SliceStable(s.rows, func(i, j int) bool {
		a, b := s.rows[i], s.rows[j]
		if descending {
			a, b = b, a
		}
		switch column {
		case SortByStartYear:
			if a.StartYear != b.StartYear {
				return a.StartYear < b.StartYear
			}
		case SortByPlaceID:
			if a.PlaceID != b.PlaceID {
				return a.PlaceID < b.PlaceID
			}
		default:
			if !strings.EqualFold(a.Title, b.Title) {
				return strings.ToLower(a.Title) < strings.ToLower(b.Title)
			}
		}
		return a.PlaceID < b.PlaceID
	})
}

// SearchFilter returns the current substring filter.
func (s *Service) SearchFilter() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filter
}

// SetSearchFilter narrows the visible rows to titles containing the given
// substring, case-insensitively.
func (s *Service) SetSearchFilter(filter string) {
	s.mu.Lock()
	s.filter = filter
	s.page = 0
	s.mu.Unlock()
}

// ClearSearchFilter removes the filter. Gesture handlers call this before
// scrolling so the intended row is guaranteed visible.
func (s *Service) ClearSearchFilter() {
	s.SetSearchFilter("")
}

// VisibleRows returns the current page of filtered rows plus the page
// number and page count.
func (s *Service) VisibleRows() (rows []models.Waypoint, page, pages int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	filtered := s.filteredLocked()
	pages = (len(filtered) + s.pageSize - 1) / s.pageSize
	if pages == 0 {
		pages = 1
	}
	page = s.page
	if page >= pages {
		page = pages - 1
	}

	start := page * s.pageSize
	end := start + s.pageSize
	if start > len(filtered) {
		start = len(filtered)
	}
	if end > len(filtered) {
		end = len(filtered)
	}
	return append([]models.Waypoint(nil), filtered[start:end]...), page, pages
}

func (s *Service) filteredLocked() []models.Waypoint {
	if s.filter == "" {
		return s.rows
	}
	needle := strings.ToLower(s.filter)
	filtered := make([]models.Waypoint, 0, len(s.rows))
	for _, row := range s.rows {
		if strings.Contains(strings.ToLower(row.Title), needle) {
			filtered = append(filtered, row)
		}
	}
	return filtered
}

// NextPage advances the pagination window.
func (s *Service) NextPage() {
	s.mu.Lock()
	defer s.mu.Unlock()
	filtered := s.filteredLocked()
	pages := (len(filtered) + s.pageSize - 1) / s.pageSize
	if s.page+1 < pages {
		s.page++
	}
}

// PrevPage moves the pagination window back.
func (s *Service) PrevPage() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.page > 0 {
		s.page--
	}
}

// ScrollToRow highlights the row for a place identifier and moves the
// pagination window so the row is on screen. Subscribers are notified of
// the highlight change.
func (s *Service) ScrollToRow(placeID string) error {
	s.mu.Lock()
	index := s.indexOfLocked(placeID)
	if index < 0 {
		s.mu.Unlock()
		return ErrRowNotFound
	}
	s.highlighted = placeID
	s.page = index / s.pageSize
	s.mu.Unlock()

	s.notifyHighlight(placeID)
	return nil
}

func (s *Service) indexOfLocked(placeID string) int {
	for i, row := range s.rows {
		if row.PlaceID == placeID {
			return i
		}
	}
	return -1
}

func (s *Service) scrollHighlightIntoViewLocked() {
	if s.highlighted == "" {
		return
	}
	if index := s.indexOfLocked(s.highlighted); index >= 0 {
		s.page = index / s.pageSize
	}
}

// Highlighted returns the highlighted row's place identifier, if any.
func (s *Service) Highlighted() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.highlighted, s.highlighted != ""
}

// ClearHighlight removes the row highlight without notifying subscribers.
func (s *Service) ClearHighlight() {
	s.mu.Lock()
	s.highlighted = ""
	s.mu.Unlock()
}

// OnHighlight registers a named highlight subscriber.
func (s *Service) OnHighlight(name string, fn func(placeID string)) error {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	if _, exists := s.subs[name]; exists {
		return ErrAlreadySubscribed
	}
	s.subs[name] = fn
	return nil
}

// Unsubscribe removes a named highlight subscriber.
func (s *Service) Unsubscribe(name string) error {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	if _, exists := s.subs[name]; !exists {
		return ErrNotSubscribed
	}
	delete(s.subs, name)
	return nil
}

func (s *Service) notifyHighlight(placeID string) {
	s.subsMu.RLock()
	subs := make([]func(string), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.subsMu.RUnlock()

	for _, fn := range subs {
		fn(placeID)
	}
}
