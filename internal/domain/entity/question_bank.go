package entity

// Question представляет вопрос теста. Вопрос принадлежит ровно одному аспекту
// и идентифицируется парой (аспект, индекс); текст неизменяем.
type Question struct {
	Aspect Aspect `json:"aspect"`
	Index  int    `json:"index"`
	Text   string `json:"text"`
}

// questionBank — статический каталог вопросов по аспектам.
// Данные перенесены из клиентского приложения без изменений (индонезийский язык).
var questionBank = map[Aspect][]string{
	AspectEmpati: {
		"Bagaimana Anda merespons perasaan orang lain dalam situasi sosial, misalnya dengan kata-kata, sentuhan, atau ekspresi wajah?",
		"Perilaku apa yang Anda tunjukkan yang peka terhadap kebutuhan dan perasaan orang lain, seperti menawarkan bantuan atau berbagi?",
		"Bagaimana Anda mengidentifikasi isyarat non-verbal orang lain (gerak tubuh, bahasa tubuh, ekspresi wajah, nada suara) secara akurat?",
		"Bagaimana Anda merespons dengan tepat terhadap berbagai ekspresi wajah yang ditunjukkan oleh orang lain?",
		"Ketika Anda mengamati seseorang dalam keadaan tertekan, bagaimana Anda meresponsnya dengan tepat, misalnya menawarkan kenyamanan atau bantuan?",
		"Bagaimana Anda menyatakan atau menunjukkan pemahaman Anda terhadap perasaan orang lain melalui tindakan, seperti mengangguk atau meniru ekspresi?",
		"Bagaimana Anda menunjukkan reaksi emosional, seperti menangis atau ekspresi sedih, sebagai respons terhadap orang lain yang tertekan?",
		"Tindakan apa yang Anda ambil saat mengamati seseorang diperlakukan tidak adil atau tidak baik, misalnya membela atau menyuarakan keprihatinan?",
		"Bagaimana Anda mendiskusikan atau mengajukan pertanyaan untuk memahami sudut pandang orang lain?",
		"Bagaimana Anda mengidentifikasi dan menyebutkan (secara verbal) perasaan yang dialami oleh orang lain?",
	},
	AspectHatiNurani: {
		"Bagaimana Anda mengakui kesalahan dan menyatakan permintaan maaf?",
		"Bagaimana Anda mengidentifikasi perilaku salah Anda dan menjelaskan mengapa itu salah?",
		"Bagaimana Anda menunjukkan kejujuran dan memenuhi janji Anda?",
		"Dalam situasi apa Anda mengambil inisiatif untuk bertindak benar tanpa perlu pengingat atau teguran dari figur otoritas?",
		"Bagaimana Anda mengartikulasikan konsekuensi dari perilaku tidak pantas Anda?",
		"Bagaimana Anda menerima kesalahan dan tidak mencoba menyalahkan orang lain saat Anda salah?",
		"Bagaimana Anda mengekspresikan rasa malu atau bersalah atas tindakan salah atau tidak pantas Anda?",
		"Jelaskan situasi di mana Anda melakukan apa yang benar meskipun ditekan oleh orang lain untuk tidak melakukannya.",
		"Upaya apa yang Anda lakukan untuk memperbaiki kerugian fisik atau emosional yang Anda sebabkan?",
		"Bagaimana Anda merumuskan cara untuk mengubah tindakan yang salah menjadi benar?",
	},
	AspectPengendalianDiri: {
		"Bagaimana Anda menunjukkan pengendalian diri dalam interaksi kelompok, misalnya dengan mengangkat tangan atau menunggu giliran untuk berbicara?",
		"Bagaimana Anda mengamati dan mematuhi aturan giliran saat bermain atau berinteraksi dengan orang lain?",
		"Bagaimana Anda mengendalikan dorongan internal Anda, seperti keinginan untuk membeli sesuatu atau makan berlebihan, tanpa intervensi eksternal?",
		"Strategi apa yang Anda gunakan untuk menenangkan diri ketika emosi Anda meningkat atau terasa kuat, misalnya mengambil napas dalam atau menghitung sampai sepuluh?",
		"Bagaimana Anda menghindari ledakan amarah atau reaksi emosional yang berlebihan dalam situasi menekan?",
		"Bagaimana Anda menahan diri dari agresi fisik, seperti memukul, menendang, atau mendorong, saat menghadapi konflik atau provokasi?",
		"Bagaimana Anda mempertimbangkan konsekuensi dan merencanakan tindakan sebelum bertindak atau membuat keputusan sembrono?",
		"Bagaimana Anda menunjukkan kesabaran dan menunggu gratifikasi, misalnya untuk hadiah atau giliran bermain, meskipun ada dorongan untuk bertindak impulsif?",
		"Bagaimana Anda melakukan perilaku yang sesuai dan diharapkan tanpa perlu pengingat atau teguran terus-menerus dari orang dewasa?",
		"Bagaimana Anda kembali tenang dan menyesuaikan diri dengan cepat setelah mengalami kekecewaan atau situasi yang membuat frustrasi?",
	},
	AspectHormat: {
		"Bagaimana Anda menunjukkan perilaku hormat terhadap orang lain tanpa memandang usia, kepercayaan, budaya, atau jenis kelamin?",
		"Bagaimana Anda menggunakan nada suara yang hormat dan menghindari perkataan atau sikap kurang ajar?",
		"Bagaimana Anda memperlakukan diri sendiri dengan cara yang terhormat, seperti menjaga kebersihan diri dan menghindari tindakan merugikan diri?",
		"Bagaimana Anda menghormati privasi orang lain, misalnya dengan mengetuk sebelum memasuki ruangan?",
		"Bagaimana Anda menahan diri dari bergosip atau membicarakan orang lain dengan cara yang tidak baik?",
		"Bagaimana Anda memperlakukan barang milik Anda dan properti orang lain dengan hormat, misalnya tidak merusak atau menggunakan tanpa izin?",
		"Bagaimana Anda menunjukkan postur tubuh yang hormat saat mendengarkan orang lain?",
		"Bagaimana Anda mengucapkan frasa sopan seperti 'Permisi,' 'Tolong,' dan 'Maaf' tanpa perlu diingatkan?",
		"Bagaimana Anda mendengarkan ide-ide secara terbuka dan tidak menyela saat orang lain berbicara?",
		"Bagaimana Anda menahan diri dari bersumpah atau menggunakan isyarat cabul?",
	},
	AspectKebaikanHati: {
		"Bagaimana Anda mengucapkan komentar positif yang membangun orang lain, tanpa diminta?",
		"Bagaimana Anda menunjukkan keprihatinan yang tulus ketika seseorang diperlakukan tidak adil atau tidak baik?",
		"Bagaimana Anda membela individu yang diusik atau dikucilkan oleh orang lain?",
		"Bagaimana Anda memperlakukan orang lain dengan lembut dan bertindak ketika melihat orang lain diperlakukan dengan tidak baik?",
		"Bagaimana Anda berbagi sumber daya, membantu orang lain dalam kesulitan, atau menghibur mereka yang sedih tanpa mengharapkan imbalan?",
		"Bagaimana Anda menolak untuk berpartisipasi dalam menghina, mengintimidasi, atau mengejek orang lain?",
		"Bagaimana Anda mengamati kebutuhan orang lain dan melakukan tindakan berdasarkan kebutuhan tersebut?",
		"Bagaimana Anda memberikan dukungan atau perhatian lembut kepada seseorang yang membutuhkan bantuan?",
		"Bagaimana Anda melakukan tindakan baik untuk orang lain secara sukarela karena melihat orang lain bahagia?",
		"Bagaimana Anda menginisiasi perbuatan baik atau mencari kesempatan untuk membantu orang lain secara proaktif?",
	},
	AspectToleransi: {
		"Bagaimana Anda menampilkan toleransi terhadap orang lain tanpa memandang usia, agama, keyakinan, budaya, atau jenis kelamin?",
		"Bagaimana Anda menunjukkan rasa hormat terhadap orang dewasa dan figur otoritas?",
		"Bagaimana Anda membuka diri untuk mengenal orang-orang dengan latar belakang dan keyakinan yang berbeda dari Anda?",
		"Bagaimana Anda menyuarakan ketidaknyamanan dan keprihatinan ketika seseorang dihina atau direndahkan?",
		"Bagaimana Anda membela mereka yang lemah (underdog) dan tidak membiarkan ketidakadilan atau intoleransi terjadi?",
		"Bagaimana Anda menahan diri untuk tidak membuat komentar atau lelucon yang merendahkan kelompok atau orang lain?",
		"Bagaimana Anda menunjukkan kebanggaan pada budaya dan warisan Anda sendiri?",
		"Bagaimana Anda bersikap ramah dan terbuka terhadap orang-orang tanpa memandang latar belakang mereka?",
		"Bagaimana Anda berfokus pada sifat-sifat positif orang lain daripada pada perbedaan mereka?",
		"Bagaimana Anda menahan diri dari menghakimi, mengategorikan, atau membuat stereotip orang lain?",
	},
	AspectKeadilan: {
		"Bagaimana Anda menikmati kesempatan untuk melayani orang lain?",
		"Bagaimana Anda menunggu giliran dengan sabar?",
		"Bagaimana Anda tidak menyalahkan orang lain sembarangan?",
		"Bagaimana Anda bersedia berkompromi agar kebutuhan semua orang terpenuhi?",
		"Bagaimana Anda menunjukkan pikiran terbuka, yaitu mendengarkan semua pihak sebelum membentuk opini?",
		"Bagaimana Anda menampilkan sportivitas yang baik, baik saat menang maupun kalah?",
		"Bagaimana Anda bersedia berbagi kepemilikan tanpa bujukan atau pengingat?",
		"Bagaimana Anda mencoba menyelesaikan masalah dengan damai dan adil?",
		"Bagaimana Anda bermain sesuai aturan dan tidak mengubahnya di tengah jalan demi keuntungan Anda?",
		"Bagaimana Anda memperhatikan hak-hak orang lain untuk memastikan mereka diperlakukan secara setara dan adil?",
	},
}

// keywordBank — ключевые слова для эвристической оценки ответов по каждому аспекту.
var keywordBank = map[Aspect][]string{
	AspectEmpati: {
		"peduli", "prihatin", "empati", "tolong", "bantu", "rasakan", "perasaan",
		"pahami", "simpati", "perhatian", "teman", "bela", "berbagi", "menghibur", "tenang",
		"senang", "sedih", "khawatir", "canggung", "terharu", "menolong", "kasihan", "iba",
	},
	AspectHatiNurani: {
		"jujur", "kejujuran", "bertanggung", "tanggung jawab", "maaf", "minta maaf", "janji",
		"salah", "benar", "dosa", "akui", "memperbaiki", "perbaikan", "kesalahan",
		"malu", "rasa bersalah", "menyesal", "integritas", "adil", "kebaikan", "moral", "etika",
	},
	AspectPengendalianDiri: {
		"sabar", "kesabaran", "tenang", "napas", "tarik napas", "kontrol", "kendali",
		"menahan diri", "mengendalikan", "tidak marah", "tidak emosi", "fokus", "berhati-hati",
		"disiplin", "teratur", "tertib", "aturlah", "kontrol diri", "diam", "tidak terburu-buru", "mengatur",
	},
	AspectHormat: {
		"hormat", "menghormati", "menghargai", "tenggang rasa", "sopan", "santun",
		"permisi", "tolong", "maaf", "sopan santun", "etika", "tatakrama", "nilai",
		"adab", "unggah-ungguh", "dengar", "mendengarkan", "memperhatikan", "tidak mengejek", "tidak menghina",
	},
	AspectKebaikanHati: {
		"baik", "kebaikan", "ramah", "lembut", "kasih sayang", "welas asih", "peduli",
		"empati", "simpati", "murah hati", "dermawan", "penolong", "menolong", "bantu",
		"menghibur", "dukung", "dukungan", "pemaaf", "pengertian", "ikhlas", "tulus", "baik hati",
	},
	AspectToleransi: {
		"toleransi", "menerima", "penerimaan", "menghargai", "keterbukaan", "berpikiran terbuka",
		"saling menghargai", "kesetaraan", "tidak diskriminasi", "perbedaan", "berbeda",
		"beragam", "plural", "ramah", "tidak menghakimi", "tidak stereotip", "sabar", "adil", "solidaritas", "saling menghormati", "inklusif",
	},
	AspectKeadilan: {
		"adil", "keadilan", "jujur", "kejujuran", "setara", "kesetaraan", "hak", "hak-hak",
		"aturan", "peraturan", "sportif", "sportivitas", "gilir", "bergiliran", "berbagi",
		"kompromi", "win-win", "kesepakatan", "mendengarkan", "transparan", "tidak pilih kasih", "tidak curang", "fair", "objektif",
	},
}

// QuestionsFor возвращает упорядоченный список вопросов аспекта.
// Порядок фиксированный и одинаков при каждом вызове.
func QuestionsFor(aspect Aspect) []Question {
	texts := questionBank[aspect]
	out := make([]Question, 0, len(texts))
	for i, text := range texts {
		out = append(out, Question{Aspect: aspect, Index: i, Text: text})
	}
	return out
}

// KeywordsFor возвращает ключевые слова аспекта (используются только скорером).
func KeywordsFor(aspect Aspect) []string {
	kw := keywordBank[aspect]
	out := make([]string, len(kw))
	copy(out, kw)
	return out
}

// QuestionCount возвращает количество вопросов в аспекте.
func QuestionCount(aspect Aspect) int {
	return len(questionBank[aspect])
}

// TotalQuestions возвращает общее количество вопросов теста по всем аспектам.
func TotalQuestions() int {
	total := 0
	for _, a := range aspectOrder {
		total += len(questionBank[a])
	}
	return total
}
