package dispatcher

// Log prefixes
const (
	LogPrefixDispatch = "internal.dispatcher.Dispatch"
)

// HelpMessage is returned for requests that no specialist claims.
const HelpMessage = `**Welcome to Octopets AI Assistant!** 🐾

I can help you with:

🔍 **Finding Pet Sitters**
- Search for sitters by location and dates
- Get sitter recommendations based on your needs
- View sitter profiles, reviews, and services
- Check sitter availability

📅 **Managing Bookings**
- Check the status of your bookings
- View all your bookings (pending, confirmed, completed)
- Cancel bookings if needed
- Estimate booking costs

**Examples:**
- "Find dog sitters in 90001 for next week"
- "Show me my pending bookings"
- "What's the status of booking #123?"
- "Tell me about sitter #2's services"

Just ask naturally, and I'll route you to the right specialist! 😊`

// fallbackTemplate is filled with the domain name when its backend cannot answer.
const fallbackTemplate = "I'm having trouble reaching our %s specialist right now. " +
	"It is temporarily unavailable, please try again in a moment."
