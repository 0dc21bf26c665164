package seeder

func Defaults() []Seeder {
	return []Seeder{
		InternshipsSeeder{},
	}
}
