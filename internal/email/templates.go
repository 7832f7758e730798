package email

import (
	"fmt"
)

func (s *Service) generateWelcomeHTML(name string) string {
	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Welcome to TripTrove</title>
    <style>
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Oxygen, Ubuntu, Cantarell, sans-serif;
            line-height: 1.6;
            color: #333;
            max-width: 600px;
            margin: 0 auto;
            padding: 20px;
            background-color: #f8f9fa;
        }
        .container {
            background-color: white;
            padding: 40px;
            border-radius: 12px;
            box-shadow: 0 2px 10px rgba(0, 0, 0, 0.1);
        }
        .header {
            text-align: center;
            margin-bottom: 30px;
        }
        .logo {
            font-size: 28px;
            font-weight: bold;
            color: #1d4e89;
            margin-bottom: 10px;
        }
        .welcome-message {
            font-size: 24px;
            color: #1d4e89;
            margin-bottom: 20px;
        }
        .content {
            font-size: 16px;
            margin-bottom: 30px;
        }
        .footer {
            margin-top: 40px;
            padding-top: 20px;
            border-top: 1px solid #e9ecef;
            font-size: 14px;
            color: #6c757d;
            text-align: center;
        }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <div class="logo">TripTrove</div>
            <div class="welcome-message">Welcome %s!</div>
        </div>

        <div class="content">
            <p>Thank you for joining TripTrove, your all-in-one travel companion!</p>

            <p>With TripTrove, you can:</p>
            <ul>
                <li>🗓️ Plan trips day by day with a full itinerary</li>
                <li>🎒 Keep packing lists and check things off as you go</li>
                <li>💸 Track your travel budget and convert currencies</li>
                <li>📷 Build a gallery of your favorite travel moments</li>
            </ul>
        </div>

        <div class="footer">
            <p>Safe travels!</p>
            <p>The TripTrove Team</p>
        </div>
    </div>
</body>
</html>`, name)
}

func (s *Service) generateWelcomeText(name string) string {
	return fmt.Sprintf(`Welcome %s!

Thank you for joining TripTrove, your all-in-one travel companion!

With TripTrove, you can:
- Plan trips day by day with a full itinerary
- Keep packing lists and check things off as you go
- Track your travel budget and convert currencies
- Build a gallery of your favorite travel moments

Safe travels!
The TripTrove Team`, name)
}
