package templates

import (
	"fmt"
	"html"

	"github.com/Sami21234/lostfound-backend/models"
)

// RenderMatchNotification generates the HTML body telling a lost-report owner
// that a possible match was reported.
func RenderMatchNotification(lost models.LostReport, found models.FoundReport, score int) string {
	body := fmt.Sprintf(`<h2 style="color: #4CAF50;">Great News! A Match Has Been Found!</h2>
<p>Hello <strong>%s</strong>,</p>
<p>Someone has reported finding an item that matches your lost item:</p>
<div style="background-color: #f5f5f5; padding: 15px; border-radius: 5px; margin: 20px 0;">
  <h3 style="margin-top: 0;">Your Lost Item:</h3>
  <p><strong>Item:</strong> %s</p>
  <p><strong>Lost Location:</strong> %s</p>
  <p><strong>Date Lost:</strong> %s</p>
  <p><strong>Description:</strong> %s</p>
</div>
<div style="background-color: #e8f5e9; padding: 15px; border-radius: 5px; margin: 20px 0;">
  <h3 style="margin-top: 0; color: #4CAF50;">Found Item Details:</h3>
  <p><strong>Item:</strong> %s</p>
  <p><strong>Found Location:</strong> %s</p>
  <p><strong>Date Found:</strong> %s</p>
  <p><strong>Description:</strong> %s</p>
  <p><strong>Match Score:</strong> %d</p>
</div>
<div style="background-color: #fff3cd; padding: 15px; border-radius: 5px; margin: 20px 0;">
  <h3 style="margin-top: 0;">Contact Information:</h3>
  <p><strong>Finder's Name:</strong> %s</p>
  <p><strong>Phone:</strong> %s</p>
  <p><strong>Email:</strong> %s</p>
</div>
<p style="margin-top: 30px;">
  <strong>Next Steps:</strong><br>
  Please contact the finder using the information above to verify and arrange pickup.
</p>`,
		html.EscapeString(lost.ContactName),
		html.EscapeString(lost.ItemName),
		html.EscapeString(lost.Location),
		html.EscapeString(lost.DateLost),
		html.EscapeString(lost.Description),
		html.EscapeString(found.ItemName),
		html.EscapeString(found.Location),
		html.EscapeString(found.DateFound),
		html.EscapeString(found.Description),
		score,
		html.EscapeString(found.ContactName),
		html.EscapeString(found.ContactPhone),
		html.EscapeString(found.ContactEmail),
	)
	return wrap("Possible Match Found", body)
}

// RenderHighConfidenceMatch generates the HTML body for the urgent
// notification sent when a strong match auto-resolves a lost report.
func RenderHighConfidenceMatch(lost models.LostReport, found models.FoundReport, score int) string {
	body := fmt.Sprintf(`<h2 style="color: #FF5722;">High Confidence Match Found!</h2>
<p>Hello <strong>%s</strong>,</p>
<p style="font-size: 16px; color: #FF5722;">
  <strong>We found a very strong match (score %d) for your lost item!</strong>
</p>
<div style="background-color: #f5f5f5; padding: 15px; border-radius: 5px; margin: 20px 0;">
  <h3 style="margin-top: 0;">Your Lost Item:</h3>
  <p><strong>Item:</strong> %s</p>
  <p><strong>Location:</strong> %s</p>
</div>
<div style="background-color: #ffe0b2; padding: 15px; border-radius: 5px; margin: 20px 0;">
  <h3 style="margin-top: 0;">Found By:</h3>
  <p><strong>Name:</strong> %s</p>
  <p><strong>Phone:</strong> %s</p>
  <p><strong>Email:</strong> %s</p>
  <p><strong>Location:</strong> %s</p>
</div>
<p style="background-color: #fff3cd; padding: 15px; border-radius: 5px;">
  <strong>Your listing has been automatically removed</strong> from the active lost items
  dashboard due to this high-confidence match.
</p>
<p style="margin-top: 30px;">
  Please contact the finder immediately to verify and collect your item!
</p>`,
		html.EscapeString(lost.ContactName),
		score,
		html.EscapeString(lost.ItemName),
		html.EscapeString(lost.Location),
		html.EscapeString(found.ContactName),
		html.EscapeString(found.ContactPhone),
		html.EscapeString(found.ContactEmail),
		html.EscapeString(found.Location),
	)
	return wrap("High Confidence Match", body)
}

func wrap(title, body string) string {
	return fmt.Sprintf(`<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Strict//EN" "http://www.w3.org/TR/xhtml1/DTD/xhtml1-strict.dtd">
<html xmlns="http://www.w3.org/1999/xhtml">
<head>
  <meta http-equiv="Content-Type" content="text/html; charset=utf-8">
  <title>%s</title>
</head>
<body style="font-family: Arial, sans-serif; margin: 0; padding: 0;">
  <div style="max-width: 600px; margin: 0 auto;">
    %s
    <p style="color: #666; font-size: 12px; margin-top: 30px;">
      This is an automated notification from the Lost &amp; Found System.
    </p>
  </div>
</body>
</html>`, html.EscapeString(title), body)
}
