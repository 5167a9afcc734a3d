package descriptions

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type templateKey struct {
	tone   Tone
	length Length
}

type templateArgs struct {
	name        string
	category    string // lower-cased
	rawCategory string
	features    []string
	audience    string
}

type templateFunc func(a templateArgs) string

// templates holds exactly one entry per tone and length. Short templates use
// the first few features with a tone-specific separator; long templates use
// all of them joined with ". ".
var templates = map[templateKey]templateFunc{
	{ToneProfessional, LengthShort}: func(a templateArgs) string {
		return fmt.Sprintf(`Introducing %[1]s, a premium %[2]s solution designed for %[4]s. %[3]s. Engineered for performance and reliability, this product delivers exceptional value and meets the highest industry standards.`,
			a.name, a.category, joinFeatures(a.features, 3, ". "), a.audience, a.rawCategory)
	},
	{ToneProfessional, LengthLong}: func(a templateArgs) string {
		return fmt.Sprintf(`Introducing %[1]s, a cutting-edge %[2]s solution meticulously designed for %[4]s. This product combines innovation with functionality to deliver outstanding results. %[3]s. Engineered with precision and built to last, %[1]s meets the highest industry standards and exceeds expectations. Our commitment to quality ensures that every aspect of this product has been optimized for maximum performance, reliability, and user satisfaction. Whether you're looking for efficiency, durability, or superior functionality, %[1]s provides a comprehensive solution that addresses your needs. Backed by rigorous testing and quality assurance, this %[2]s product represents the perfect balance of innovation and practicality. Invest in excellence and experience the difference that professional-grade quality makes in your daily operations.`,
			a.name, a.category, joinFeatures(a.features, 0, ". "), a.audience, a.rawCategory)
	},
	{ToneFriendly, LengthShort}: func(a templateArgs) string {
		return fmt.Sprintf(`Hey there! Meet %[1]s, your new favorite %[2]s companion! Perfect for %[4]s, this amazing product brings you %[3]s. It's designed to make your life easier and more enjoyable. You're going to love it!`,
			a.name, a.category, joinFeatures(a.features, 2, ", and "), a.audience, a.rawCategory)
	},
	{ToneFriendly, LengthLong}: func(a templateArgs) string {
		return fmt.Sprintf(`Hey there! We're super excited to introduce you to %[1]s, your new favorite %[2]s companion! If you're %[4]s, this is exactly what you've been looking for. Let's talk about what makes this product so special! %[3]s. But that's not all! %[1]s was created with you in mind, combining functionality with a user-friendly design that makes every interaction a breeze. We know how important it is to have products that just work, without any hassle or complications. That's why we've poured our hearts into making %[1]s the best it can be. Whether you're using it every day or just once in a while, you'll appreciate the thoughtful details and quality construction. It's like having a reliable friend by your side, always ready to help out. Plus, it looks great and fits perfectly into your lifestyle. We're confident that once you try %[1]s, you'll wonder how you ever lived without it. So go ahead, treat yourself – you deserve it!`,
			a.name, a.category, joinFeatures(a.features, 0, ". "), a.audience, a.rawCategory)
	},
	{ToneCreative, LengthShort}: func(a templateArgs) string {
		return fmt.Sprintf(`✨ Discover %[1]s – where innovation meets imagination! This isn't just another %[2]s product; it's a game-changer for %[4]s. Experience %[3]s. Break free from the ordinary and embrace the extraordinary!`,
			a.name, a.category, joinFeatures(a.features, 2, " and "), a.audience, a.rawCategory)
	},
	{ToneCreative, LengthLong}: func(a templateArgs) string {
		return fmt.Sprintf(`✨ Get ready to experience something truly remarkable! %[1]s isn't just another %[2]s product – it's a revolutionary creation designed to inspire and transform the way %[4]s interact with their world. Imagine a product that truly understands your needs and exceeds your wildest expectations. That's %[1]s. %[3]s. But here's where it gets really interesting: this product was born from a passion for innovation and a desire to challenge the status quo. We asked ourselves, "What if we could create something that doesn't just meet needs, but anticipates them?" The result is %[1]s, a harmonious blend of cutting-edge technology, thoughtful design, and pure creative genius. Every curve, every feature, every detail has been crafted with intention and care. This isn't mass-produced mediocrity – it's artisanal excellence. When you choose %[1]s, you're not just buying a product; you're investing in a vision of what's possible. You're joining a community of forward-thinkers who refuse to settle for "good enough." So take the leap, embrace the new, and discover what happens when creativity meets functionality in perfect harmony.`,
			a.name, a.category, joinFeatures(a.features, 0, ". "), a.audience, a.rawCategory)
	},
	{ToneMinimalist, LengthShort}: func(a templateArgs) string {
		return fmt.Sprintf(`%[1]s. %[5]s. %[3]s. Designed for %[4]s who value simplicity and quality. Nothing more, nothing less.`,
			a.name, a.category, joinFeatures(a.features, 3, ". "), a.audience, a.rawCategory)
	},
	{ToneMinimalist, LengthLong}: func(a templateArgs) string {
		return fmt.Sprintf(`%[1]s. A %[2]s product that embodies the essence of minimalism. %[3]s. Created for %[4]s who understand that true sophistication lies in simplicity. Every element serves a purpose. No unnecessary complications. No excess. Just pure, focused functionality delivered through clean, elegant design. %[1]s strips away the superfluous to reveal what truly matters: performance, quality, and user experience. In a world cluttered with noise and distraction, this product stands as a testament to the power of restraint. Each feature has been carefully considered and deliberately included. Nothing is arbitrary. The result is a refined product that does exactly what it should, exactly when it should, without pretense or embellishment. This is intentional design at its finest. For those who appreciate the beauty of simplicity and the strength of purpose, %[1]s represents an ideal. It doesn't shout for attention; it commands respect through quiet confidence. Essential. Efficient. Elegant. This is %[1]s.`,
			a.name, a.category, joinFeatures(a.features, 0, ". "), a.audience, a.rawCategory)
	},
	{ToneLuxurious, LengthShort}: func(a templateArgs) string {
		return fmt.Sprintf(`Indulge in the exquisite %[1]s, a prestigious %[2]s masterpiece crafted exclusively for discerning %[4]s. %[3]s. Experience unparalleled elegance and refined sophistication. You deserve nothing but the finest.`,
			a.name, a.category, joinFeatures(a.features, 2, ", complemented by "), a.audience, a.rawCategory)
	},
	{ToneLuxurious, LengthLong}: func(a templateArgs) string {
		return fmt.Sprintf(`Prepare to enter a world of unparalleled luxury with %[1]s, an extraordinary %[2]s masterpiece that redefines excellence. Exclusively designed for distinguished %[4]s who demand nothing but the absolute finest, this exceptional product represents the pinnacle of sophistication and refinement. %[3]s. Every element of %[1]s has been meticulously crafted by master artisans who understand that true luxury lies in the details. From the premium materials sourced from the world's finest suppliers to the impeccable finishing touches that define true craftsmanship, no expense has been spared in creating this magnificent product. This is not merely a purchase; it is an investment in your lifestyle, a statement of your impeccable taste, and a testament to your appreciation for the finer things in life. %[1]s transcends ordinary utility to become a symbol of prestige and exclusivity. Limited in availability and unlimited in quality, this distinguished %[2]s offering provides an experience that is as rare as it is remarkable. When you choose %[1]s, you join an elite circle of connoisseurs who understand that true value cannot be measured merely in price, but in the incomparable experience of owning something truly exceptional. Elevate your standards. Embrace the extraordinary. Experience %[1]s.`,
			a.name, a.category, joinFeatures(a.features, 0, ". "), a.audience, a.rawCategory)
	},
}

// Compose renders the description for a record that has already passed
// validation. A tone or length outside the validated domain panics.
func Compose(record InputRecord) string {
	tmpl, ok := templates[templateKey{tone: record.ToneOfVoice, length: record.DescriptionLength}]
	if !ok {
		panic(fmt.Sprintf("descriptions: no template for tone %q and length %q", record.ToneOfVoice, record.DescriptionLength))
	}
	return tmpl(templateArgs{
		name:        record.ProductName,
		category:    lowerCase(record.ProductCategory),
		rawCategory: record.ProductCategory,
		features:    ParseFeatures(record.KeyFeatures),
		audience:    record.TargetAudience,
	})
}

// joinFeatures joins at most limit features with sep. A limit <= 0 keeps all.
func joinFeatures(features []string, limit int, sep string) string {
	if limit > 0 && len(features) > limit {
		features = features[:limit]
	}
	return strings.Join(features, sep)
}

// Casers carry state, so each call builds its own.
func lowerCase(s string) string {
	return cases.Lower(language.Und).String(s)
}
