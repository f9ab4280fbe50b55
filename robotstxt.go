package siteprobe

import (
	"context"

	"github.com/morikuni/failure/v2"
	"github.com/temoto/robotstxt"
)

func getRobotsData(ctx context.Context, c *Client, baseURL string) (data *robotstxt.RobotsData, err error) {
	resp, errGet := c.Get(ctx, baseURL+"/robots.txt")
	if resp == nil {
		return nil, errGet
	}
	// robotstxt knows what 4xx and 5xx mean for crawling
	if errGet != nil && !failure.Is(errGet, ErrUnexpectedStatus) {
		return nil, errGet
	}
	return robotstxt.FromStatusAndBytes(resp.Code, resp.Body)
}

// checkRobots never blocks, everything it finds becomes a warning
func checkRobots(ctx context.Context, c *Client, baseURL string, paths ...string) (warnings []string) {
	warnings = []string{}
	robotsData, errRobots := getRobotsData(ctx, c, baseURL)
	if errRobots != nil {
		return append(warnings, "could not load robots.txt: "+describe(errRobots))
	}
	robotsGroup := robotsData.FindGroup(c.agent)
	for _, p := range paths {
		if !robotsGroup.Test(p) {
			warnings = append(warnings, "robots.txt does not allow access to "+p+" for this user agent")
		}
	}
	return warnings
}
