package effects

// Selectors and class names of the PhotoSlider markup.
const (
	SelectorAnchors   = `a[href^="#"]`
	SelectorSections  = "section[id]"
	SelectorNavLinks  = ".nav-link"
	SelectorSection   = "section"
	SelectorCarousel  = "#imageCarousel"
	SelectorCards     = ".card"
	SelectorIcons     = ".fa-3x"
	SelectorHeading   = "#about .display-5"
	SelectorLoader    = ".loader"
	SelectorFooter    = "footer .social-links a"
	SelectorButtons   = ".btn"
	SelectorReveal    = ".scroll-animate, .image-slide-left, .text-slide-right, .card-slide-left, .section-fade-up, .icon-bounce, .gallery-item, .product-slide, .heading-wave, .text-reveal"
	SelectorStaggered = ".scroll-animate, .image-slide-left, .text-slide-right, .icon-bounce, .gallery-item, .product-slide, .heading-wave, .text-reveal"

	ClassActive    = "active"
	ClassAnimateIn = "animate-in"
	ClassRipple    = "ripple"
)

// ConfigElementID is the id of the JSON script element that carries the
// page's Config.
const ConfigElementID = "sitefx-config"
