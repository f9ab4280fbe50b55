package siteprobe

// Selectors of the listing page and the homepage.
// The site changes its markup every now and then, update these when the
// selector diagnostic starts reporting misses.
const (
	SelectorContainer  = "div.page-item-detail"
	SelectorTitle      = "h3.h5 a"
	SelectorIdentifier = ".item-thumb"
	SelectorSubtitle   = "span.font-meta.chapter"

	AttributeLink       = "href"
	AttributeIdentifier = "data-post-id"

	// NonceScriptID id of the inline script wp_localize_script renders for the login ajax handler
	NonceScriptID = "wp-manga-login-ajax-js-extra"
)
