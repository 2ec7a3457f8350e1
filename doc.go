// Package readability provides heuristic web-article content extraction:
// given an HTML document it finds the page's main article, strips
// navigation/ad/comment chrome, and returns a clean title, HTML content,
// and plain text, along with secondary metadata (author, date, lead
// image, site name, excerpt).
//
// # Basic Usage
//
// Create a client and parse a URL:
//
//	client := readability.New()
//	result, err := client.Parse(context.Background(), "https://example.com/article")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Title)
//	fmt.Println(result.Content)
//
// # Configuration
//
// The client can be configured with functional options:
//
//	client := readability.New(
//	    readability.WithTimeout(30 * time.Second),
//	    readability.WithUserAgent("MyApp/1.0"),
//	    readability.WithAllowPrivateNetworks(false),
//	)
//
// # Parsing Pre-fetched HTML
//
// If you already have the HTML content, parse it directly without a
// network round trip:
//
//	html := "<html>...</html>"
//	result, err := client.ParseHTML(context.Background(), html, "https://example.com")
//
// # Error Handling
//
// Errors are typed for programmatic handling:
//
//	result, err := client.Parse(ctx, url)
//	if err != nil {
//	    var parseErr *readability.ParseError
//	    if errors.As(err, &parseErr) {
//	        switch parseErr.Code {
//	        case readability.ErrFetch:
//	            // handle fetch failure
//	        case readability.ErrSSRF:
//	            // handle blocked private-network target
//	        }
//	    }
//	}
//
// # Thread Safety
//
// A Client holds no per-extraction mutable state; one instance may be
// shared and called concurrently across goroutines.
package readability
