package database

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/festwish/wish-service/pkg/logger"
)

// SeedReferenceData loads a starter set of festivals, relationships, message
// templates, quotes and card backgrounds. Runs only against an empty
// festivals table; reseeding an existing database is a no-op.
func SeedReferenceData(db *sqlx.DB) error {
	var count int
	if err := db.Get(&count, "SELECT COUNT(*) FROM festivals"); err != nil {
		return err
	}

	if count > 0 {
		logger.Infof("Database already has %d festivals, skipping seed", count)
		return nil
	}

	festivals := []struct {
		slug, name, culture, month string
	}{
		{"diwali", "Diwali", "Hindu", "November"},
		{"holi", "Holi", "Hindu", "March"},
		{"christmas", "Christmas", "Christian", "December"},
		{"eid-al-fitr", "Eid al-Fitr", "Islamic", "April"},
		{"chinese-new-year", "Chinese New Year", "Chinese", "February"},
		{"thanksgiving", "Thanksgiving", "Secular", "November"},
	}

	festivalIDs := make(map[string]int64, len(festivals))
	for _, f := range festivals {
		result, err := db.Exec(
			"INSERT INTO festivals (slug, name, religion_culture, typical_month) VALUES (?, ?, ?, ?)",
			f.slug, f.name, f.culture, f.month,
		)
		if err != nil {
			return fmt.Errorf("failed to seed festival %s: %w", f.slug, err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return err
		}
		festivalIDs[f.slug] = id
	}

	relationships := []struct {
		name, display, category string
		sortOrder               int
	}{
		{"mother", "Mother", "family", 1},
		{"father", "Father", "family", 2},
		{"sister", "Sister", "family", 3},
		{"brother", "Brother", "family", 4},
		{"friend", "Friend", "social", 5},
		{"colleague", "Colleague", "work", 6},
	}

	relationshipIDs := make(map[string]int64, len(relationships))
	for _, r := range relationships {
		result, err := db.Exec(
			"INSERT INTO relationships (name, display_name, category, sort_order) VALUES (?, ?, ?, ?)",
			r.name, r.display, r.category, r.sortOrder,
		)
		if err != nil {
			return fmt.Errorf("failed to seed relationship %s: %w", r.name, err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return err
		}
		relationshipIDs[r.name] = id
	}

	messages := []struct {
		festival, relationship, text, tone string
	}{
		{"diwali", "mother", "Happy Diwali, Mom! May your year shine as bright as the diyas you light for all of us.", "warm"},
		{"diwali", "mother", "Wishing you a Diwali full of light, laughter and sweets, dear Mom.", "playful"},
		{"diwali", "father", "Happy Diwali, Dad! Thank you for being the steady light of our family.", "warm"},
		{"diwali", "friend", "May this Diwali bring you prosperity, joy and a year of new beginnings, my friend!", "warm"},
		{"diwali", "colleague", "Wishing you and your family a bright and prosperous Diwali.", "formal"},
		{"holi", "friend", "Happy Holi! May your life be as colorful as the gulal we throw today.", "playful"},
		{"holi", "sister", "Happy Holi, sis! Save some colors for me.", "playful"},
		{"christmas", "mother", "Merry Christmas, Mom! Your warmth makes every Christmas magical.", "warm"},
		{"christmas", "friend", "Merry Christmas! Wishing you cozy days, good food and great company.", "warm"},
		{"christmas", "brother", "Merry Christmas, bro! May your stocking be full and your Wi-Fi fast.", "playful"},
		{"eid-al-fitr", "mother", "Eid Mubarak, Mom! May Allah bless you with health, happiness and peace.", "warm"},
		{"eid-al-fitr", "friend", "Eid Mubarak! May this day bring joy to you and your loved ones.", "warm"},
		{"chinese-new-year", "friend", "Gong Xi Fa Cai! Wishing you fortune and happiness in the new year.", "warm"},
		{"thanksgiving", "friend", "Happy Thanksgiving! Grateful for another year of your friendship.", "warm"},
	}

	for _, m := range messages {
		_, err := db.Exec(
			"INSERT INTO wish_messages (festival_id, relationship_id, message_text, tone) VALUES (?, ?, ?, ?)",
			festivalIDs[m.festival], relationshipIDs[m.relationship], m.text, m.tone,
		)
		if err != nil {
			return fmt.Errorf("failed to seed message template: %w", err)
		}
	}

	quotes := []struct {
		festival, text, author string
	}{
		{"diwali", "May the festival of lights brighten your life with endless joy and happiness.", "Traditional"},
		{"diwali", "As the light of the lamp dispels darkness, may the light within us dispel all darkness in our lives.", "Hindu Proverb"},
		{"diwali", "Darkness cannot drive out darkness; only light can do that.", "Martin Luther King Jr."},
		{"holi", "Let the colors of Holi spread the message of peace and happiness.", "Traditional"},
		{"holi", "Add colors to your life by splashing them on others.", "Holi Proverb"},
		{"christmas", "Christmas is not a time nor a season, but a state of mind.", "Calvin Coolidge"},
		{"christmas", "Christmas waves a magic wand over this world, and behold, everything is softer and more beautiful.", "Norman Vincent Peale"},
		{"eid-al-fitr", "Eid is a day of joy, thanksgiving, worship, brotherhood, and unity.", "Islamic Tradition"},
		{"eid-al-fitr", "May Allah flood your life with happiness, your heart with love, and your soul with spirituality.", "Traditional"},
		{"chinese-new-year", "May the new year bring you prosperity, health, and happiness.", "Chinese Blessing"},
		{"thanksgiving", "Gratitude turns what we have into enough.", "Anonymous"},
		{"thanksgiving", "Be thankful for what you have; you'll end up having more.", "Oprah Winfrey"},
	}

	for _, q := range quotes {
		_, err := db.Exec(
			"INSERT INTO festival_quotes (festival_id, quote_text, author) VALUES (?, ?, ?)",
			festivalIDs[q.festival], q.text, q.author,
		)
		if err != nil {
			return fmt.Errorf("failed to seed quote: %w", err)
		}
	}

	images := []struct {
		festival, url, alt string
	}{
		{"diwali", "https://images.unsplash.com/photo-1604423043492-41303788de3f?w=1080", "Lit diyas arranged in rows"},
		{"diwali", "https://images.unsplash.com/photo-1605021154283-2c0e194cf929?w=1080", "Rangoli with candles"},
		{"holi", "https://images.unsplash.com/photo-1576398289164-c48dc021b4e1?w=1080", "Clouds of colored powder"},
		{"christmas", "https://images.unsplash.com/photo-1512389142860-9c449e58a543?w=1080", "Decorated Christmas tree"},
		{"eid-al-fitr", "https://images.unsplash.com/photo-1564769625905-50e93615e769?w=1080", "Crescent moon lanterns"},
		{"chinese-new-year", "https://images.unsplash.com/photo-1518709766631-a6a7f45921c3?w=1080", "Red lanterns at night"},
		{"thanksgiving", "https://images.unsplash.com/photo-1574672280600-4accfa5b6f98?w=1080", "Autumn harvest table"},
	}

	for _, img := range images {
		_, err := db.Exec(
			"INSERT INTO festival_images (festival_id, image_url, alt_text, is_card_template) VALUES (?, ?, ?, TRUE)",
			festivalIDs[img.festival], img.url, img.alt,
		)
		if err != nil {
			return fmt.Errorf("failed to seed festival image: %w", err)
		}
	}

	logger.Infof("Seeded %d festivals, %d relationships, %d templates, %d quotes, %d images",
		len(festivals), len(relationships), len(messages), len(quotes), len(images))

	return nil
}
