package corpus

import "github.com/brainsacos-ui/asistente-linux/internal/domain/qa"

// Default returns the built-in corpus used when no external source is
// configured or the configured one cannot be read. The slice is rebuilt on
// every call so callers can never mutate the canonical data.
func Default() []qa.Entry {
	entries := make([]qa.Entry, len(defaultEntries))
	copy(entries, defaultEntries)
	return entries
}

var defaultEntries = []qa.Entry{
	{Question: "¿Qué comando muestra el espacio libre en disco?", Answer: "df -h"},
	{Question: "¿Qué comando muestra el uso de espacio de un directorio?", Answer: "du -sh /ruta/al/directorio"},
	{Question: "¿Cómo veo el uso de memoria del sistema?", Answer: "free -h"},
	{Question: "¿Cómo listo los procesos en ejecución?", Answer: "ps aux"},
	{Question: "¿Qué comando muestra los procesos en tiempo real?", Answer: "top (o htop si está instalado)"},
	{Question: "¿Cómo termino un proceso por su PID?", Answer: "kill <PID>, o kill -9 <PID> si no responde"},
	{Question: "¿Cómo cambio los permisos de un archivo?", Answer: "chmod 644 archivo (u+rw, go+r)"},
	{Question: "¿Cómo cambio el propietario de un archivo?", Answer: "chown usuario:grupo archivo"},
	{Question: "¿Cómo creo un usuario nuevo?", Answer: "sudo useradd -m nombre && sudo passwd nombre"},
	{Question: "¿Cómo cambio la contraseña de un usuario?", Answer: "sudo passwd nombre_de_usuario"},
	{Question: "¿Cómo veo a qué grupos pertenece un usuario?", Answer: "groups nombre_de_usuario"},
	{Question: "¿Cómo agrego un usuario a un grupo?", Answer: "sudo usermod -aG grupo usuario"},
	{Question: "¿Cómo comprimo un directorio en tar.gz?", Answer: "tar -czvf archivo.tar.gz directorio/"},
	{Question: "¿Cómo descomprimo un archivo tar.gz?", Answer: "tar -xzvf archivo.tar.gz"},
	{Question: "¿Cómo busco texto dentro de archivos?", Answer: "grep -r \"texto\" /ruta"},
	{Question: "¿Cómo busco un archivo por nombre?", Answer: "find /ruta -name \"patrón\""},
	{Question: "¿Cómo me conecto a un servidor remoto?", Answer: "ssh usuario@servidor"},
	{Question: "¿Cómo copio archivos a un servidor remoto?", Answer: "scp archivo usuario@servidor:/ruta/destino"},
	{Question: "¿Cómo sincronizo directorios entre servidores?", Answer: "rsync -avz origen/ usuario@servidor:/destino/"},
	{Question: "¿Cómo inicio o detengo un servicio?", Answer: "sudo systemctl start|stop nombre.service"},
	{Question: "¿Cómo habilito un servicio al arranque?", Answer: "sudo systemctl enable nombre.service"},
	{Question: "¿Cómo veo el estado de un servicio?", Answer: "systemctl status nombre.service"},
	{Question: "¿Cómo veo los registros del sistema?", Answer: "journalctl -xe, o journalctl -u servicio para uno concreto"},
	{Question: "¿Cómo programo una tarea periódica?", Answer: "crontab -e y agrega una línea con el horario y el comando"},
	{Question: "¿Cómo listo las tareas programadas de mi usuario?", Answer: "crontab -l"},
	{Question: "¿Qué comando muestra la versión del kernel?", Answer: "uname -r (uname -a para todo el detalle)"},
	{Question: "¿Cómo veo las interfaces de red y sus direcciones IP?", Answer: "ip a (o ip addr show)"},
	{Question: "¿Cómo pruebo la conectividad con otro equipo?", Answer: "ping -c 4 destino"},
	{Question: "¿Cómo veo los puertos abiertos y sus procesos?", Answer: "ss -tulpn (o netstat -tulpn en sistemas antiguos)"},
	{Question: "¿Cómo abro un puerto en el firewall?", Answer: "sudo ufw allow 8080/tcp (con ufw activo)"},
	{Question: "¿Cómo actualizo los paquetes en Debian o Ubuntu?", Answer: "sudo apt update && sudo apt upgrade"},
	{Question: "¿Cómo instalo un paquete en Debian o Ubuntu?", Answer: "sudo apt install nombre_del_paquete"},
	{Question: "¿Cómo instalo un paquete en Red Hat o Fedora?", Answer: "sudo dnf install nombre_del_paquete"},
	{Question: "¿Cómo monto una partición manualmente?", Answer: "sudo mount /dev/sdb1 /mnt/punto"},
	{Question: "¿Cómo listo los discos y particiones?", Answer: "lsblk (o sudo fdisk -l)"},
	{Question: "¿Cómo veo cuánto tiempo lleva encendido el servidor?", Answer: "uptime"},
	{Question: "¿Cómo sé qué usuario soy actualmente?", Answer: "whoami"},
	{Question: "¿Cómo veo la ruta de un ejecutable?", Answer: "which nombre_del_comando"},
	{Question: "¿Cómo creo un enlace simbólico?", Answer: "ln -s /ruta/original /ruta/enlace"},
	{Question: "¿Cómo veo las primeras o últimas líneas de un archivo?", Answer: "head -n 20 archivo, tail -n 20 archivo (tail -f para seguirlo)"},
	{Question: "¿Cómo cuento las líneas de un archivo?", Answer: "wc -l archivo"},
	{Question: "¿Cómo reemplazo texto dentro de un archivo?", Answer: "sed -i 's/viejo/nuevo/g' archivo"},
	{Question: "¿Cómo descargo un archivo desde la terminal?", Answer: "wget URL, o curl -O URL"},
	{Question: "¿Cómo veo las variables de entorno?", Answer: "env (export VAR=valor para definir una)"},
	{Question: "¿Cómo veo el historial de comandos?", Answer: "history"},
	{Question: "¿Cómo ejecuto un comando que siga vivo al cerrar la sesión?", Answer: "nohup comando & (o usa tmux/screen)"},
	{Question: "¿Cómo apago o reinicio el servidor desde la terminal?", Answer: "sudo shutdown -h now, sudo reboot"},
	{Question: "¿Cómo veo los mensajes del kernel?", Answer: "dmesg | less"},
	{Question: "¿Cómo veo la información de la CPU?", Answer: "lscpu (o cat /proc/cpuinfo)"},
	{Question: "¿Cómo cambio el nombre del equipo?", Answer: "sudo hostnamectl set-hostname nuevo-nombre"},
	{Question: "¿Cómo veo los usuarios conectados al sistema?", Answer: "w (o who)"},
}
