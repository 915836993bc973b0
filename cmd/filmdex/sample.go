package main

import "github.com/filmdex/filmdex/catalog"

// defaultKeywords returns more searches than the default permit capacity,
// so blocking on admission is visible in a plain demo run.
func defaultKeywords() []string {
	return []string{"dragon", "magic", "war", "love", "space", "crime", "dream", "mystery"}
}

// sampleRecords returns the built-in demo catalog. The catalog contents are
// an input to the search core, not part of it; swap this loader out to
// search something else.
func sampleRecords() []catalog.Record {
	return []catalog.Record{
		{
			Title: "How to Train Your Dragon", Director: "Chris Sanders",
			ReleaseDate: "2010-03-26", Rating: 92.5,
			Description: "A young Viking befriends a dragon and changes his village forever.",
		},
		{
			Title: "Dragonheart", Director: "Rob Cohen",
			ReleaseDate: "1996-05-31", Rating: 71.0,
			Description: "A knight teams up with a dragon to overthrow a tyrant king.",
		},
		{
			Title: "Spirited Away", Director: "Hayao Miyazaki",
			ReleaseDate: "2001-07-20", Rating: 97.0,
			Description: "A girl enters a spirit world filled with magic, mystery, and courage.",
		},
		{
			Title: "Interstellar", Director: "Christopher Nolan",
			ReleaseDate: "2014-11-07", Rating: 89.0,
			Description: "A space mission searches for a new home for humanity beyond Earth.",
		},
		{
			Title: "The Dark Knight", Director: "Christopher Nolan",
			ReleaseDate: "2008-07-18", Rating: 94.0,
			Description: "A crime saga where Gotham faces chaos and a villain tests the hero.",
		},
		{
			Title: "Inception", Director: "Christopher Nolan",
			ReleaseDate: "2010-07-16", Rating: 91.0,
			Description: "A thief enters dreams to plant an idea; reality becomes uncertain.",
		},
		{
			Title: "The Lord of the Rings", Director: "Peter Jackson",
			ReleaseDate: "2001-12-19", Rating: 96.0,
			Description: "An epic war against darkness with magic, courage, and sacrifice.",
		},
		{
			Title: "Love Actually", Director: "Richard Curtis",
			ReleaseDate: "2003-11-14", Rating: 78.0,
			Description: "Multiple stories of love unfold during the holiday season.",
		},
		{
			Title: "War Horse", Director: "Steven Spielberg",
			ReleaseDate: "2011-12-25", Rating: 75.0,
			Description: "A boy and his horse are separated by war and struggle to reunite.",
		},
		{
			Title: "The Girl with the Dragon Tattoo", Director: "David Fincher",
			ReleaseDate: "2011-12-21", Rating: 86.0,
			Description: "A journalist and hacker investigate a mystery with dark secrets.",
		},
	}
}
