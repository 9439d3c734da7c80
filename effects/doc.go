// Package effects implements the PhotoSlider page behaviors against the
// host capabilities in package dom.
//
// Every effect takes its event sources through a Host and returns a
// teardown function that detaches the listeners, observers and timers it
// created. Teardown functions are safe to call more than once.
//
// # Effects
//
//   - SmoothScroll: in-page anchors scroll their target into view.
//   - ScrollSpy: the nav link of the section under the viewport top is active.
//   - Reveal: animated elements gain "animate-in" when visible, children staggered.
//   - Parallax: the carousel drifts at a fraction of the scroll offset.
//   - CardHover, IconFloat: hover styling for cards and icons.
//   - TypeHeading: the about heading is retyped one rune at a time.
//   - Styles: keyframes for the float and ripple animations.
//   - CarouselHover: the carousel pauses while hovered.
//   - Loader: the loading overlay fades out after the page loads.
//   - FooterReveal: footer social links slide in when visible.
//   - Ripple: buttons show a ripple at the click position.
//   - ScrollThrottle: a scroll hook limited to one call per frame.
package effects
