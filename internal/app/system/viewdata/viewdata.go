// internal/app/system/viewdata/viewdata.go
package viewdata

import (
	"net/http"
	"sync"

	"github.com/dalemusser/waffle/pantry/httpnav"
	"github.com/gorilla/csrf"
)

// DefaultSiteName is used until Init is called.
const DefaultSiteName = "StrataCard"

// BaseVM contains common fields for all page view models.
// Embed it in feature view models:
//
//	type listData struct {
//	    viewdata.BaseVM
//	    Cards []cardVM
//	}
type BaseVM struct {
	SiteName string

	// Page context
	Title       string
	BackURL     string
	CurrentPath string

	// CSRF token for form hidden inputs
	CSRFToken string
}

var (
	mu       sync.RWMutex
	siteName = DefaultSiteName
)

// Init sets the site name shown in the layout. Call once from bootstrap.
// An empty name keeps the default.
func Init(name string) {
	mu.Lock()
	defer mu.Unlock()
	if name != "" {
		siteName = name
	}
}

// SiteName returns the configured site name.
func SiteName() string {
	mu.RLock()
	defer mu.RUnlock()
	return siteName
}

// New creates a BaseVM for r with no title or back link.
func New(r *http.Request) BaseVM {
	return BaseVM{
		SiteName:    SiteName(),
		CurrentPath: httpnav.CurrentPath(r),
		CSRFToken:   csrf.Token(r),
	}
}

// NewBaseVM creates a BaseVM with a page title and a back link that falls
// back to backDefault when the request carries none.
func NewBaseVM(r *http.Request, title, backDefault string) BaseVM {
	vm := New(r)
	vm.Title = title
	vm.BackURL = httpnav.ResolveBackURL(r, backDefault)
	return vm
}
