package catalog

// builtinHeader 和 builtinRows 是内置的 30 款游戏目录，未配置目录文件时使用。
var builtinHeader = []string{"ID", "Nome", "Gênero", "Plataforma", "Modo de jogo"}

var builtinRows = [][]string{
	{"1", "The Witcher 3: Wild Hunt", "RPG, Ação", "PC, PlayStation, Xbox", "Single-player, Mundo Aberto"},
	{"2", "Call of Duty: Warzone", "FPS, Battle Royale", "PC, PlayStation, Xbox", "Multiplayer Online"},
	{"3", "FIFA 23", "Esportes, Futebol", "PC, PlayStation, Xbox", "Multiplayer Online"},
	{"4", "Minecraft", "Sandbox, Sobrevivência", "PC, Mobile, Console", "Single-player, Multiplayer"},
	{"5", "Grand Theft Auto V", "Ação, Aventura", "PC, PlayStation, Xbox", "Single-player, Multiplayer, Mundo Aberto"},
	{"6", "Counter-Strike 2", "FPS, Tático", "PC", "Multiplayer Online"},
	{"7", "Red Dead Redemption 2", "Ação, Aventura", "PC, PlayStation, Xbox", "Single-player, Multiplayer, Mundo Aberto"},
	{"8", "Fortnite", "Battle Royale", "PC, PlayStation, Xbox, Mobile", "Multiplayer Online"},
	{"9", "League of Legends", "MOBA", "PC", "Multiplayer Online"},
	{"10", "Valorant", "FPS, Tático", "PC", "Multiplayer Online"},
	{"11", "Cyberpunk 2077", "RPG, Ação", "PC, PlayStation, Xbox", "Single-player, Mundo Aberto"},
	{"12", "Assassins Creed Valhalla", "Ação, Aventura", "PC, PlayStation, Xbox", "Single-player, Mundo Aberto"},
	{"13", "God of War", "Ação, Aventura", "PlayStation", "Single-player"},
	{"14", "The Last of Us Part II", "Ação, Aventura", "PlayStation", "Single-player"},
	{"15", "Halo Infinite", "FPS", "PC, Xbox", "Multiplayer Online"},
	{"16", "Overwatch 2", "FPS, Hero Shooter", "PC, PlayStation, Xbox", "Multiplayer Online"},
	{"17", "Apex Legends", "Battle Royale, FPS", "PC, PlayStation, Xbox", "Multiplayer Online"},
	{"18", "Rocket League", "Esportes, Carros", "PC, PlayStation, Xbox", "Multiplayer Online"},
	{"19", "Among Us", "Party, Social", "PC, Mobile", "Multiplayer Online"},
	{"20", "Stardew Valley", "Simulação, Fazenda", "PC, Console, Mobile", "Single-player, Multiplayer"},
	{"21", "Elden Ring", "RPG, Ação", "PC, PlayStation, Xbox", "Single-player, Multiplayer, Mundo Aberto"},
	{"22", "Genshin Impact", "RPG, Aventura", "PC, PlayStation, Mobile", "Single-player, Multiplayer"},
	{"23", "Destiny 2", "FPS, RPG", "PC, PlayStation, Xbox", "Multiplayer Online"},
	{"24", "Terraria", "Sandbox, Aventura", "PC, Console, Mobile", "Single-player, Multiplayer"},
	{"25", "Fall Guys", "Party, Battle Royale", "PC, PlayStation", "Multiplayer Online"},
	{"26", "Portal 2", "Puzzle, Aventura", "PC, Console", "Single-player, Cooperativo"},
	{"27", "The Legend of Zelda: Breath of the Wild", "Ação, Aventura", "Nintendo Switch", "Single-player, Mundo Aberto"},
	{"28", "Dark Souls III", "RPG, Ação", "PC, PlayStation, Xbox", "Single-player, Multiplayer"},
	{"29", "Resident Evil 4", "Survival Horror", "PC, PlayStation, Xbox", "Single-player"},
	{"30", "Skyrim", "RPG, Aventura", "PC, PlayStation, Xbox", "Single-player, Mundo Aberto"},
}

// BuiltinTable 返回内置目录的副本。
func BuiltinTable() Table {
	rows := make([][]string, len(builtinRows))
	for i, r := range builtinRows {
		rows[i] = append([]string(nil), r...)
	}
	return Table{Header: append([]string(nil), builtinHeader...), Rows: rows}
}

// Builtin 加载内置目录。内置数据固定，出错说明数据本身有误。
func Builtin() *Corpus {
	c, _, err := FromTable(BuiltinTable())
	if err != nil {
		panic("catalog: builtin catalog is invalid: " + err.Error())
	}
	return c
}
